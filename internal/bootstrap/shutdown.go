package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Reforge_Go/internal/levelstore"
	"github.com/osse101/Reforge_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  levelstore.Store
}

// GracefulShutdown stops the HTTP server first so no new attempt can start,
// then closes the level store, which flushes the file backend.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgLevelStoreFailure, "error", err)
		} else {
			slog.Info(LogMsgLevelStoreClosed)
		}
	}

	slog.Info(LogMsgServerStopped)
}
