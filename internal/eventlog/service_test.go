package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/database/memory"
	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	service := NewService(new(MockRepository))
	mockBus := new(MockEventBus)

	for _, et := range JournalTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	require.NoError(t, service.Subscribe(mockBus))
	mockBus.AssertExpectations(t)
	mockBus.AssertNotCalled(t, "Subscribe", event.LedgerCredited, mock.Anything)
}

func TestService_JournalsBusEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventLogRepository()
	service := NewService(repo)
	bus := event.NewMemoryBus()
	require.NoError(t, service.Subscribe(bus))

	round := domain.NewGameRound(3, time.Now().UTC(), 0)
	require.NoError(t, bus.Publish(ctx, event.NewRoundCreatedEvent(round)))
	require.NoError(t, round.RecordDeposit("alice", 700, 0))
	require.NoError(t, bus.Publish(ctx, event.NewDepositRecordedEvent(round, "alice", 700)))
	require.NoError(t, bus.Publish(ctx, event.NewLedgerCreditedEvent("alice", 1000, 1000)))

	entries, err := service.GetEvents(ctx, repository.EventLogFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 2, "ledger credits are not journaled")

	assert.Equal(t, string(event.RoundCreated), entries[0].EventType)
	require.NotNil(t, entries[0].RoundIndex)
	assert.Equal(t, uint64(3), *entries[0].RoundIndex)

	assert.Equal(t, string(event.DepositRecorded), entries[1].EventType)
	assert.Contains(t, string(entries[1].Payload), `"depositor":"alice"`)
}

func TestService_HandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("initialization has no round", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)
		evt := event.NewJackpotInitializedEvent(&domain.Config{Admin: "admin", TeamWallet: "treasury"})

		mockRepo.On("LogEvent", ctx, mock.MatchedBy(func(e *repository.EventLogEntry) bool {
			return e.EventType == string(event.JackpotInitialized) && e.RoundIndex == nil
		})).Return(nil)

		assert.NoError(t, svc.handleEvent(ctx, evt))
		mockRepo.AssertExpectations(t)
	})

	t.Run("replayed metadata", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)
		evt := event.Event{
			Type:     event.RoundExpired,
			Payload:  map[string]interface{}{"round_index": 5},
			Metadata: map[string]interface{}{event.MetadataKeyRoundIndex: float64(5)},
		}

		mockRepo.On("LogEvent", ctx, mock.MatchedBy(func(e *repository.EventLogEntry) bool {
			return e.RoundIndex != nil && *e.RoundIndex == 5
		})).Return(nil)

		assert.NoError(t, svc.handleEvent(ctx, evt))
		mockRepo.AssertExpectations(t)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)
		mockRepo.On("LogEvent", ctx, mock.Anything).Return(errors.New("disk full"))

		assert.NoError(t, svc.handleEvent(ctx, event.Event{Type: event.RoundCreated, Payload: struct{}{}}))
	})

	t.Run("unmarshalable payload is skipped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)

		assert.NoError(t, svc.handleEvent(ctx, event.Event{Type: event.RoundCreated, Payload: make(chan int)}))
		mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything)
	})
}

func TestService_GetEvents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, DefaultListLimit},
		{"explicit", 10, 10},
		{"clamped", MaxListLimit + 1, MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)
			mockRepo.On("GetEvents", ctx, repository.EventLogFilter{Limit: tt.wantLimit}).Return(nil, nil)

			events, err := service.GetEvents(ctx, repository.EventLogFilter{Limit: tt.limit})
			require.NoError(t, err)
			assert.NotNil(t, events)
			assert.Empty(t, events)
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("store error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)
		mockRepo.On("GetEvents", ctx, mock.Anything).Return(nil, errors.New("boom"))

		_, err := service.GetEvents(ctx, repository.EventLogFilter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextGetEvents)
	})
}

func TestService_CleanupOldEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	svc.now = func() time.Time { return now }

	mockRepo.On("CleanupOldEvents", ctx, now.AddDate(0, 0, -10)).Return(int64(5), nil)

	count, err := svc.CleanupOldEvents(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)

	t.Run("zero retention keeps everything", func(t *testing.T) {
		count, err := svc.CleanupOldEvents(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, count)
		mockRepo.AssertNumberOfCalls(t, "CleanupOldEvents", 1)
	})
}
