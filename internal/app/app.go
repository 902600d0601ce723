package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tarikh-backend/internal/config"
	"github.com/heartmarshall/tarikh-backend/internal/transport/middleware"
	"github.com/heartmarshall/tarikh-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis", cfg.Redis.Enabled),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, c, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler builds the router and wraps it with the middleware chain.
func NewHandler(cfg *config.Config, c *Container, logger *slog.Logger) http.Handler {
	checks := []rest.Check{{Name: "database", Pinger: c.Pool}}
	if c.Leaderboard != nil {
		checks = append(checks, rest.Check{Name: "redis", Pinger: c.Leaderboard})
	}

	h := rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), checks...),
		Account:    rest.NewAccountHandler(c.Accounts, logger),
		Items:      rest.NewItemHandler(c.Items, logger),
		Links:      rest.NewLinkHandler(c.Links, logger),
		Bookmarks:  rest.NewBookmarkHandler(c.Bookmarks, logger),
		Reputation: rest.NewReputationHandler(c.Reputation, logger),
	}
	if cfg.Metrics.Enabled {
		h.Metrics = promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{Registry: c.Registry})
		h.MetricsPath = cfg.Metrics.Path
	}

	var metrics middleware.Middleware
	if c.Metrics != nil {
		metrics = middleware.Metrics(c.Metrics)
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		metrics,
		middleware.Auth(c.Accounts, logger),
	)
	return chain(rest.NewRouter(h))
}
