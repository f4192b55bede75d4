package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/announcer"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/eventlog"
	"github.com/osse101/Jackpot_Go/internal/metrics"
	"github.com/osse101/Jackpot_Go/internal/sse"
	"github.com/osse101/Jackpot_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	RoundWorker *worker.RoundWorker
	// Announcer is optional
	Announcer *announcer.Announcer
	// Feed and Journal are optional
	Feed    *sse.Hub
	Journal eventlog.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the business metrics collector, the round worker timers, the event
// journal, the live round feed and, when configured, the Discord announcer.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.RoundWorker != nil {
		deps.RoundWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgRoundWorkerSubscribed)
	}

	if deps.Journal != nil {
		if err := deps.Journal.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeJournal, err)
		}
		slog.Info(LogMsgJournalSubscribed)
	}

	if deps.Feed != nil {
		sse.NewSubscriber(deps.Feed).Subscribe(deps.EventBus)
	}

	if deps.Announcer != nil {
		deps.Announcer.Register(deps.EventBus)
		slog.Info(LogMsgAnnouncerRegistered)
	}

	return nil
}
