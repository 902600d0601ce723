package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/award"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/badge"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/bookmark"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/link"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/reference"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tarikh-backend/internal/adapter/redis"
	"github.com/heartmarshall/tarikh-backend/internal/auth"
	"github.com/heartmarshall/tarikh-backend/internal/config"
	"github.com/heartmarshall/tarikh-backend/internal/observability"
	"github.com/heartmarshall/tarikh-backend/internal/service/account"
	bookmarksvc "github.com/heartmarshall/tarikh-backend/internal/service/bookmark"
	"github.com/heartmarshall/tarikh-backend/internal/service/linkgraph"
	"github.com/heartmarshall/tarikh-backend/internal/service/reputation"
	"github.com/heartmarshall/tarikh-backend/internal/service/submission"
	"github.com/heartmarshall/tarikh-backend/migrations"
)

// Container holds the connected infrastructure and the wired services.
// It is shared by the API server and the operator CLI.
type Container struct {
	Pool        *pgxpool.Pool
	Redis       *goredis.Client
	Leaderboard *redis.Leaderboard
	Registry    *prometheus.Registry
	Metrics     *observability.Metrics

	Accounts   *account.Service
	Items      *submission.Service
	Links      *linkgraph.Service
	Bookmarks  *bookmarksvc.Service
	Reputation *reputation.Service
}

// NewContainer connects to PostgreSQL (and Redis when enabled), optionally
// migrates the schema, and wires every service.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{Registry: prometheus.NewRegistry()}
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if cfg.Metrics.Enabled {
		c.Metrics = observability.NewMetrics(c.Registry)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	c.Pool = pool

	if cfg.Redis.Enabled {
		c.Redis = redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		c.Leaderboard = redis.NewLeaderboard(c.Redis, cfg.Redis.LeaderboardKey)
		if err := c.Leaderboard.Ping(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
	}

	c.wire(cfg, logger)
	return c, nil
}

func (c *Container) wire(cfg *config.Config, logger *slog.Logger) {
	tx := postgres.NewTxManager(c.Pool, postgres.WithRetry(cfg.Database.TxMaxRetries, cfg.Database.TxRetryBase))

	users := user.New(c.Pool)
	items := item.New(c.Pool)
	refs := reference.New(c.Pool)
	badges := badge.New(c.Pool)
	bookmarks := bookmark.New(c.Pool)
	links := link.New(c.Pool)
	awards := award.New(c.Pool)
	audits := audit.New(c.Pool)

	// A nil *redis.Leaderboard must not reach the service as a non-nil
	// interface.
	if c.Leaderboard != nil {
		c.Reputation = reputation.NewService(logger, users, badges, awards, c.Leaderboard, tx, c.Metrics)
	} else {
		c.Reputation = reputation.NewService(logger, users, badges, awards, nil, tx, c.Metrics)
	}

	c.Items = submission.NewService(logger, items, links, bookmarks, audits, c.Reputation, tx,
		submission.Points{Event: cfg.Reputation.EventPoints, Saying: cfg.Reputation.SayingPoints},
		c.Metrics,
	)
	c.Links = linkgraph.NewService(logger, links, items, refs, audits, tx, c.Metrics)
	c.Bookmarks = bookmarksvc.NewService(logger, bookmarks, items, refs, c.Reputation, tx,
		bookmarksvc.Milestone{Count: cfg.Reputation.BookmarkMilestone, Points: cfg.Reputation.BookmarkPoints},
		c.Metrics,
	)
	c.Accounts = account.NewService(logger, users, bookmarks, badges, audits, tx,
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		c.Reputation,
	)
}

// Close releases the connections. It is safe to call on a partly built
// container.
func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close() //nolint:errcheck
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
