package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/osse101/Jackpot_Go/internal/repository"
)

// EventLogRepository implements repository.EventLog in the events bucket of
// the jackpot file
type EventLogRepository struct {
	db  *bbolt.DB
	now func() time.Time
}

// EventLog returns the journal stored alongside the jackpot records
func (r *JackpotRepository) EventLog() *EventLogRepository {
	return &EventLogRepository{db: r.db, now: r.now}
}

// LogEvent appends entry under the next bucket sequence
func (r *EventLogRepository) LogEvent(ctx context.Context, entry *repository.EventLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(eventsBucket))
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next event sequence: %w", err)
		}

		stored := *entry
		stored.ID = int64(seq)
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = r.now().UTC()
		}
		payload, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		if err := bucket.Put(uint64Key(seq), payload); err != nil {
			return err
		}

		entry.ID = stored.ID
		entry.CreatedAt = stored.CreatedAt
		return nil
	})
}

// GetEvents returns matching entries oldest first
func (r *EventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []repository.EventLogEntry
	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(eventsBucket)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e repository.EventLogEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal event: %w", err)
			}
			if !filter.Matches(&e) {
				continue
			}
			out = append(out, e)
			if filter.Limit > 0 && len(out) == filter.Limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// CleanupOldEvents deletes entries created before cutoff
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var deleted int64
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(eventsBucket))

		// Collect first: deleting under a live cursor skips keys
		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var e repository.EventLogEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal event: %w", err)
			}
			if e.CreatedAt.Before(cutoff) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		deleted = int64(len(stale))
		return nil
	})
	return deleted, err
}
