package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// MigrationStatus is one row of the migration status report.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// Migrate applies all pending migrations from fsys using goose.
// goose needs a *sql.DB, so a short-lived database/sql handle is opened on dsn.
func Migrate(ctx context.Context, dsn string, fsys fs.FS, logger *slog.Logger) error {
	return withProvider(ctx, dsn, fsys, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		return nil
	})
}

// Status reports the applied state of every known migration.
func Status(ctx context.Context, dsn string, fsys fs.FS) ([]MigrationStatus, error) {
	var out []MigrationStatus
	err := withProvider(ctx, dsn, fsys, func(p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			out = append(out, MigrationStatus{
				Version: s.Source.Version,
				Source:  s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return nil
	})
	return out, err
}

func withProvider(ctx context.Context, dsn string, fsys fs.FS, fn func(*goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}
