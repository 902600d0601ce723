// Command server runs the Tarikh HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/heartmarshall/tarikh-backend/internal/app"
)

func main() {
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		slog.Info(fmt.Sprintf(format, v...), "component", "server")
	})); err != nil {
		slog.Error("set GOMAXPROCS", slog.String("error", err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
