package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/shooter-mock-api/internal/server"
	"github.com/osse101/shooter-mock-api/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *sse.Hub
}

// GracefulShutdown stops the event stream and then the HTTP server.
//
// Open SSE connections never finish on their own, so the hub goes first;
// closing it ends every stream handler and lets Shutdown drain the rest.
// Errors are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		slog.Info(LogMsgStoppingEventStream)
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
