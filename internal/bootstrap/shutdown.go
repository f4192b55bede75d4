package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
	"github.com/osse101/Jackpot_Go/internal/scheduler"
	"github.com/osse101/Jackpot_Go/internal/server"
	"github.com/osse101/Jackpot_Go/internal/sse"
	"github.com/osse101/Jackpot_Go/internal/tracing"
	"github.com/osse101/Jackpot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Feed               *sse.Hub
	Server             *server.Server
	JackpotService     jackpot.Service
	RoundWorker        *worker.RoundWorker
	AnnouncerPool      *worker.Pool
	Scheduler          *scheduler.Scheduler
	MaintenancePool    *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
	Tracing            tracing.ShutdownFunc
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 0. Round feed (ends open streams so the server can drain)
// 1. HTTP server (stop accepting new requests)
// 2. Round worker (cancel pending expiry timers)
// 3. Jackpot service (complete in-flight operations)
// 4. Event publisher, then the announcer pool it feeds
// 5. Maintenance scheduler and its pool
// 6. Storage and tracing
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Feed != nil {
		components.Feed.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.RoundWorker != nil {
		if err := components.RoundWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRoundWorkerShutdownFailed, "error", err)
		}
	}

	if components.JackpotService != nil {
		shutdownService(ctx, ServiceNameJackpot, components.JackpotService)
	}

	// Flush pending events before the announcer pool stops taking jobs
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.AnnouncerPool != nil {
		components.AnnouncerPool.Stop()
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.MaintenancePool != nil {
		components.MaintenancePool.Stop()
	}

	if err := components.Storage.Close(); err != nil {
		slog.Error(LogMsgStorageCloseFailed, "error", err)
	}

	if components.Tracing != nil {
		if err := components.Tracing(ctx); err != nil {
			slog.Error(LogMsgTracingShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// shutdownService shuts down a service and logs any errors
func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
