package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/event"
)

// FeedTypes are the bus events forwarded to the round feed. Ledger credits
// carry account balances and stay off the public stream.
var FeedTypes = []event.Type{
	event.JackpotInitialized,
	event.RoundCreated,
	event.DepositRecorded,
	event.WinnerSelected,
	event.RewardClaimed,
	event.FeeSwept,
	event.RoundExpired,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers the forwarding handler for every feed type
func (s *Subscriber) Subscribe(bus event.Bus) {
	names := make([]string, 0, len(FeedTypes))
	for _, t := range FeedTypes {
		bus.Subscribe(t, s.handleEvent)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

// handleEvent forwards the typed payload unchanged; its JSON tags are the
// wire format of the feed
func (s *Subscriber) handleEvent(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
