package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tarikh-backend/internal/app"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

func promoteCommand() *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set the role of an account by email",
		Long: "Set the role of an account by email. Used to bootstrap the first admin;\n" +
			"the last remaining admin cannot be demoted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := domain.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}
			return withContainer(cmd, func(ctx context.Context, _ *env, c *app.Container) error {
				user, err := c.Accounts.AssignRole(ctx, email, r)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", user.Username, user.Email, user.Role)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the account")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "role to assign")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
