package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ExpTable_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server      *server.Server
	StopWatcher context.CancelFunc
	WatcherDone <-chan error
	Storage     *Storage
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then the catalogue watcher, then closes storage. Errors are logged and do
// not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultShutdownTimeout)
		defer cancel()
	}

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.StopWatcher != nil {
		slog.Info(LogMsgStoppingWatcher)
		components.StopWatcher()
		if components.WatcherDone != nil {
			select {
			case <-components.WatcherDone:
			case <-ctx.Done():
			}
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
