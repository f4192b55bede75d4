// Package eventlog journals round lifecycle events so a round's history can
// be audited after the live feed has moved on.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// JournalTypes are the bus events written to the journal. Ledger credits are
// already recorded as transfers.
var JournalTypes = []event.Type{
	event.JackpotInitialized,
	event.RoundCreated,
	event.DepositRecorded,
	event.WinnerSelected,
	event.RewardClaimed,
	event.FeeSwept,
	event.RoundExpired,
}

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the journal on every journaled event type
	Subscribe(bus event.Bus) error

	// GetEvents returns journal entries oldest first. The filter limit is
	// clamped to MaxListLimit; zero means DefaultListLimit.
	GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes entries older than retentionDays. A
	// non-positive retention keeps everything.
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers event handlers for all journaled types
func (s *service) Subscribe(bus event.Bus) error {
	names := make([]string, 0, len(JournalTypes))
	for _, eventType := range JournalTypes {
		bus.Subscribe(eventType, s.handleEvent)
		names = append(names, string(eventType))
	}
	slog.Info(LogMsgSubscribed, "types", names)
	return nil
}

// handleEvent writes one event to the journal. Failures are logged and
// swallowed: the bus retries a failed publish as a whole, which would
// repeat every other subscriber.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToMarshalPayload, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	entry := &repository.EventLogEntry{
		EventType:  string(evt.Type),
		RoundIndex: roundIndexOf(evt),
		Payload:    payload,
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return nil
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldRoundIndex, entry.RoundIndex)
	return nil
}

// roundIndexOf reads the round index from event metadata. Replayed events
// decoded from JSON carry it as float64.
func roundIndexOf(evt event.Event) *uint64 {
	switch v := evt.GetMetadataValue(event.MetadataKeyRoundIndex).(type) {
	case uint64:
		return &v
	case float64:
		if v > 0 {
			idx := uint64(v)
			return &idx
		}
	}
	return nil
}

// GetEvents returns journal entries matching filter
func (s *service) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	events, err := s.repo.GetEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetEvents, err)
	}
	if events == nil {
		events = []repository.EventLogEntry{}
	}
	return events, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		logger.FromContext(ctx).Debug(LogMsgCleanupDisabled)
		return 0, nil
	}
	cutoff := s.now().AddDate(0, 0, -retentionDays)
	count, err := s.repo.CleanupOldEvents(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextCleanup, err)
	}
	return count, nil
}
