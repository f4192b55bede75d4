package repository

import (
	"context"
	"encoding/json"
	"time"
)

// EventLog defines the storage of the round event journal
type EventLog interface {
	// LogEvent appends an entry. ID and CreatedAt are assigned by the store
	// when left zero.
	LogEvent(ctx context.Context, entry *EventLogEntry) error

	// GetEvents returns matching entries oldest first
	GetEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)

	// CleanupOldEvents removes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventLogEntry is one journaled bus event
type EventLogEntry struct {
	ID         int64           `json:"id"`
	EventType  string          `json:"event_type"`
	RoundIndex *uint64         `json:"round_index,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EventLogFilter narrows a journal query. Zero fields match everything.
type EventLogFilter struct {
	RoundIndex *uint64
	EventType  *string
	Since      *time.Time
	Limit      int
}

// Matches reports whether entry passes the filter, ignoring Limit
func (f EventLogFilter) Matches(entry *EventLogEntry) bool {
	if f.RoundIndex != nil && (entry.RoundIndex == nil || *entry.RoundIndex != *f.RoundIndex) {
		return false
	}
	if f.EventType != nil && entry.EventType != *f.EventType {
		return false
	}
	if f.Since != nil && entry.CreatedAt.Before(*f.Since) {
		return false
	}
	return true
}
