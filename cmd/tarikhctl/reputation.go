package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tarikh-backend/internal/app"
	"github.com/heartmarshall/tarikh-backend/internal/service/reputation"
)

func badgesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Manage the badge catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Install or update the default badge catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, _ *env, c *app.Container) error {
				saved, err := c.Reputation.SeedBadges(ctx, reputation.DefaultBadges())
				if err != nil {
					return err
				}
				for _, b := range saved {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d points\n", b.Name, b.PointsRequired)
				}
				return nil
			})
		},
	})
	return cmd
}

func leaderboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Manage the Redis leaderboard mirror",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Repopulate the leaderboard from stored totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, e *env, c *app.Container) error {
				if !e.cfg.Redis.Enabled {
					return fmt.Errorf("redis is disabled; set REDIS_ENABLED=true")
				}
				n, err := c.Reputation.RebuildLeaderboard(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "leaderboard rebuilt with %d users\n", n)
				return nil
			})
		},
	})
	return cmd
}
