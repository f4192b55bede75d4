package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Jackpot event types
const (
	JackpotInitialized Type = domain.EventTypeJackpotInitialized
	RoundCreated       Type = domain.EventTypeRoundCreated
	DepositRecorded    Type = domain.EventTypeDepositRecorded
	WinnerSelected     Type = domain.EventTypeWinnerSelected
	RewardClaimed      Type = domain.EventTypeRewardClaimed
	FeeSwept           Type = domain.EventTypeFeeSwept
	RoundExpired       Type = domain.EventTypeRoundExpired
	LedgerCredited     Type = domain.EventTypeLedgerCredited
)

// AllJackpotTypes lists every event type the jackpot service publishes
var AllJackpotTypes = []Type{
	JackpotInitialized, RoundCreated, DepositRecorded, WinnerSelected,
	RewardClaimed, FeeSwept, RoundExpired, LedgerCredited,
}

func newEvent(t Type, payload interface{}, roundIndex uint64) Event {
	var md Metadata
	if roundIndex > 0 {
		md = map[string]interface{}{MetadataKeyRoundIndex: roundIndex}
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: md,
	}
}

// NewJackpotInitializedEvent creates a config bootstrap event
func NewJackpotInitializedEvent(cfg *domain.Config) Event {
	return newEvent(JackpotInitialized, *cfg.Clone(), 0)
}

// NewRoundCreatedEvent creates a round-opened event
func NewRoundCreatedEvent(round *domain.GameRound) Event {
	return newEvent(RoundCreated, domain.RoundCreatedPayload{
		RoundIndex: round.Index,
		StartedAt:  round.StartedAt,
		EndsAt:     round.EndsAt,
		Timestamp:  time.Now().Unix(),
	}, round.Index)
}

// NewDepositRecordedEvent creates a deposit event
func NewDepositRecordedEvent(round *domain.GameRound, depositor domain.Identity, amount uint64) Event {
	return newEvent(DepositRecorded, domain.DepositRecordedPayload{
		RoundIndex:   round.Index,
		Depositor:    depositor,
		Amount:       amount,
		TotalAmount:  round.TotalAmount,
		DepositCount: round.DepositCount(),
		Timestamp:    time.Now().Unix(),
	}, round.Index)
}

// NewWinnerSelectedEvent creates a winner event
func NewWinnerSelectedEvent(round *domain.GameRound) Event {
	var winner domain.Identity
	if round.Winner != nil {
		winner = *round.Winner
	}
	return newEvent(WinnerSelected, domain.WinnerSelectedPayload{
		RoundIndex:          round.Index,
		Winner:              winner,
		WinnerIndex:         round.WinnerIndex,
		WinnerDepositAmount: round.WinnerDepositAmount,
		TotalAmount:         round.TotalAmount,
		Rand:                round.Rand,
		RandSource:          round.RandSource,
		Timestamp:           time.Now().Unix(),
	}, round.Index)
}

// NewRewardClaimedEvent creates a payout event
func NewRewardClaimedEvent(round *domain.GameRound) Event {
	var winner domain.Identity
	if round.Winner != nil {
		winner = *round.Winner
	}
	return newEvent(RewardClaimed, domain.RewardClaimedPayload{
		RoundIndex:   round.Index,
		Winner:       winner,
		RewardAmount: round.RewardAmount,
		FeeAmount:    round.FeeAmount,
		Timestamp:    time.Now().Unix(),
	}, round.Index)
}

// NewFeeSweptEvent creates a round-completed event
func NewFeeSweptEvent(round *domain.GameRound, teamWallet domain.Identity) Event {
	return newEvent(FeeSwept, domain.FeeSweptPayload{
		RoundIndex: round.Index,
		TeamWallet: teamWallet,
		Amount:     round.FeeSwept,
		Timestamp:  time.Now().Unix(),
	}, round.Index)
}

// NewRoundExpiredEvent creates an expiry event
func NewRoundExpiredEvent(round *domain.GameRound) Event {
	return newEvent(RoundExpired, domain.RoundExpiredPayload{
		RoundIndex:   round.Index,
		TotalAmount:  round.TotalAmount,
		DepositCount: round.DepositCount(),
		Timestamp:    time.Now().Unix(),
	}, round.Index)
}

// NewLedgerCreditedEvent creates a funding event
func NewLedgerCreditedEvent(account domain.Identity, amount, balance uint64) Event {
	return newEvent(LedgerCredited, domain.LedgerCreditedPayload{
		Account:   account,
		Amount:    amount,
		Balance:   balance,
		Timestamp: time.Now().Unix(),
	}, 0)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
