package storetest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/repository"
)

// EventLogFactory returns an empty journal for one subtest
type EventLogFactory func(t *testing.T) repository.EventLog

// RunEventLogContract runs the shared journal tests against newLog
func RunEventLogContract(t *testing.T, newLog EventLogFactory) {
	t.Run("append and filter", func(t *testing.T) { testEventLogFilter(t, newLog(t)) })
	t.Run("cleanup before cutoff", func(t *testing.T) { testEventLogCleanup(t, newLog(t)) })
	t.Run("assigns id and time", func(t *testing.T) { testEventLogDefaults(t, newLog(t)) })
}

func roundPtr(v uint64) *uint64 { return &v }

func seedEvents(t *testing.T, log repository.EventLog, base time.Time) {
	t.Helper()
	ctx := context.Background()
	entries := []repository.EventLogEntry{
		{EventType: "jackpot.initialized", Payload: json.RawMessage(`{"admin":"admin"}`), CreatedAt: base},
		{EventType: "round.created", RoundIndex: roundPtr(1), Payload: json.RawMessage(`{"round_index":1}`), CreatedAt: base.Add(time.Minute)},
		{EventType: "round.deposit_recorded", RoundIndex: roundPtr(1), Payload: json.RawMessage(`{"round_index":1,"amount":500}`), CreatedAt: base.Add(2 * time.Minute)},
		{EventType: "round.created", RoundIndex: roundPtr(2), Payload: json.RawMessage(`{"round_index":2}`), CreatedAt: base.Add(3 * time.Minute)},
	}
	for i := range entries {
		require.NoError(t, log.LogEvent(ctx, &entries[i]))
	}
}

func testEventLogFilter(t *testing.T, log repository.EventLog) {
	ctx := context.Background()
	base := time.Unix(1_700_000_000, 0).UTC()
	seedEvents(t, log, base)

	all, err := log.GetEvents(ctx, repository.EventLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "jackpot.initialized", all[0].EventType)
	assert.Nil(t, all[0].RoundIndex)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].ID, all[i-1].ID, "oldest first")
	}

	round1, err := log.GetEvents(ctx, repository.EventLogFilter{RoundIndex: roundPtr(1)})
	require.NoError(t, err)
	require.Len(t, round1, 2)
	assert.Equal(t, "round.created", round1[0].EventType)
	assert.Equal(t, "round.deposit_recorded", round1[1].EventType)
	assert.JSONEq(t, `{"round_index":1,"amount":500}`, string(round1[1].Payload))

	created := "round.created"
	byType, err := log.GetEvents(ctx, repository.EventLogFilter{EventType: &created})
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, uint64(2), *byType[1].RoundIndex)

	since := base.Add(2 * time.Minute)
	recent, err := log.GetEvents(ctx, repository.EventLogFilter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	limited, err := log.GetEvents(ctx, repository.EventLogFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, limited, 3)

	none, err := log.GetEvents(ctx, repository.EventLogFilter{RoundIndex: roundPtr(9)})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testEventLogCleanup(t *testing.T, log repository.EventLog) {
	ctx := context.Background()
	base := time.Unix(1_700_000_000, 0).UTC()
	seedEvents(t, log, base)

	deleted, err := log.CleanupOldEvents(ctx, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	left, err := log.GetEvents(ctx, repository.EventLogFilter{})
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "round.deposit_recorded", left[0].EventType)

	deleted, err = log.CleanupOldEvents(ctx, base)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func testEventLogDefaults(t *testing.T, log repository.EventLog) {
	ctx := context.Background()
	before := time.Now().Add(-time.Minute)

	entry := repository.EventLogEntry{EventType: "round.expired", RoundIndex: roundPtr(4), Payload: json.RawMessage(`{}`)}
	require.NoError(t, log.LogEvent(ctx, &entry))
	assert.NotZero(t, entry.ID)
	assert.True(t, entry.CreatedAt.After(before), "created_at defaults to now")
}
