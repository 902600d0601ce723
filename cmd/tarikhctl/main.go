// Command tarikhctl holds the operator tasks that are not exposed over HTTP:
// schema migration, admin bootstrap, badge catalog seeding and leaderboard
// rebuilds. It reads the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/heartmarshall/tarikh-backend/internal/app"
	"github.com/heartmarshall/tarikh-backend/internal/config"
)

const programName = "tarikhctl"

var globalFlags = struct {
	timeout time.Duration
}{}

func slogPrintf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), "component", programName)
}

// env is what every subcommand needs: loaded config and a logger.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: app.NewLogger(cfg.Log)}, nil
}

// withContainer loads config, wires the services and hands them to fn.
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, e *env, c *app.Container) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), globalFlags.timeout)
	defer cancel()

	// Operator commands never migrate implicitly.
	e.cfg.Database.AutoMigrate = false
	c, err := app.NewContainer(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(ctx, e, c)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           programName,
		Short:         "Tarikh operator tool",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVarP(&globalFlags.timeout, "timeout", "t", 2*time.Minute, "overall deadline for the command")

	root.AddCommand(
		migrateCommand(),
		promoteCommand(),
		badgesCommand(),
		leaderboardCommand(),
	)
	return root
}

func main() {
	if _, err := maxprocs.Set(maxprocs.Logger(slogPrintf)); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}
