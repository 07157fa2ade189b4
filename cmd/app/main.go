// Command app serves the exp table web pages and JSON API.
//
// @title Exp Table API
// @version 1.0
// @description Ranks stages by EXP per cost and totals cashable items.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	_ "github.com/osse101/ExpTable_Go/docs"
	"github.com/osse101/ExpTable_Go/internal/bootstrap"
	"github.com/osse101/ExpTable_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(w)
	}
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	stopWatcher, watcherDone := app.StartCatalogWatcher(ctx)

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
		Server:      app.Server,
		StopWatcher: stopWatcher,
		WatcherDone: watcherDone,
		Storage:     app.Storage,
	})

	if exitCode != 0 {
		logFile.Close()
		os.Exit(exitCode)
	}
}
