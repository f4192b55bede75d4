package metrics

import (
	"context"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all jackpot events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllJackpotTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.RoundCreated:
		p, err := event.DecodePayload[domain.RoundCreatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		RoundsCreated.Inc()
		CurrentRound.Set(float64(p.RoundIndex))
		CurrentPool.Set(0)

	case event.DepositRecorded:
		p, err := event.DecodePayload[domain.DepositRecordedPayload](evt.Payload)
		if err != nil {
			return err
		}
		DepositsRecorded.Inc()
		AmountDeposited.Add(float64(p.Amount))
		CurrentPool.Set(float64(p.TotalAmount))

	case event.WinnerSelected:
		p, err := event.DecodePayload[domain.WinnerSelectedPayload](evt.Payload)
		if err != nil {
			return err
		}
		WinnersSelected.WithLabelValues(p.RandSource).Inc()

	case event.RewardClaimed:
		p, err := event.DecodePayload[domain.RewardClaimedPayload](evt.Payload)
		if err != nil {
			return err
		}
		RewardsPaid.Add(float64(p.RewardAmount))

	case event.FeeSwept:
		p, err := event.DecodePayload[domain.FeeSweptPayload](evt.Payload)
		if err != nil {
			return err
		}
		FeesSwept.Add(float64(p.Amount))
		CurrentPool.Set(0)

	case event.RoundExpired:
		RoundsExpired.Inc()

	case event.LedgerCredited:
		p, err := event.DecodePayload[domain.LedgerCreditedPayload](evt.Payload)
		if err != nil {
			return err
		}
		LedgerCredited.Add(float64(p.Amount))
	}
	return nil
}

// RecordRejection counts a lifecycle operation that failed with err
func RecordRejection(operation string, err error) {
	if err == nil {
		return
	}
	OperationsRejected.WithLabelValues(operation, domain.ErrorKind(err)).Inc()
}
