package memory

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Jackpot_Go/internal/repository"
)

// EventLogRepository implements repository.EventLog in memory
type EventLogRepository struct {
	mu      sync.RWMutex
	entries []repository.EventLogEntry
	nextID  int64
	now     func() time.Time
}

// NewEventLogRepository creates an empty journal
func NewEventLogRepository() *EventLogRepository {
	return &EventLogRepository{now: time.Now}
}

// LogEvent appends a copy of entry
func (r *EventLogRepository) LogEvent(_ context.Context, entry *repository.EventLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *entry
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}
	stored.Payload = append([]byte(nil), entry.Payload...)
	r.entries = append(r.entries, stored)

	entry.ID = stored.ID
	entry.CreatedAt = stored.CreatedAt
	return nil
}

// GetEvents returns matching entries oldest first
func (r *EventLogRepository) GetEvents(_ context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []repository.EventLogEntry
	for i := range r.entries {
		if !filter.Matches(&r.entries[i]) {
			continue
		}
		out = append(out, r.entries[i])
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// CleanupOldEvents drops entries created before cutoff
func (r *EventLogRepository) CleanupOldEvents(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	var deleted int64
	for _, e := range r.entries {
		if e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return deleted, nil
}
