package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/testing/leaktest"
)

const waitFor = time.Second

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, waitFor, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(waitFor):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := startHub(t)

	all := hub.Register(nil)
	winners := hub.Register([]string{string(event.WinnerSelected), " "})
	waitClients(t, hub, 2)

	hub.Broadcast(string(event.RoundCreated), domain.RoundCreatedPayload{RoundIndex: 1})
	hub.Broadcast(string(event.WinnerSelected), domain.WinnerSelectedPayload{RoundIndex: 1, Winner: "bob"})

	assert.Equal(t, string(event.RoundCreated), receive(t, all).Type)
	assert.Equal(t, string(event.WinnerSelected), receive(t, all).Type)

	got := receive(t, winners)
	assert.Equal(t, string(event.WinnerSelected), got.Type)
	assert.NotEmpty(t, got.ID)
	select {
	case e := <-winners.EventChannel:
		t.Fatalf("unexpected event %s", e.Type)
	default:
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := hub.Register(nil)
	waitClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClientsAndRejectsNew(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		c := hub.Register(nil)
		waitClients(t, hub, 1)

		hub.Stop()
		hub.Stop()

		_, ok := <-c.EventChannel
		assert.False(t, ok)
		assert.Nil(t, hub.Register(nil))
	})
}

func TestHub_StopClosesClientsRegisteredConcurrently(t *testing.T) {
	const runs = 500

	for i := 0; i < runs; i++ {
		hub := NewHub()
		hub.Start()

		registered := make(chan *Client, 1)
		go func() { registered <- hub.Register(nil) }()
		hub.Stop()

		c := <-registered
		if c == nil {
			continue
		}
		select {
		case _, ok := <-c.EventChannel:
			require.False(t, ok, "run %d: channel left open after Stop", i)
		case <-time.After(waitFor):
			t.Fatalf("run %d: channel left open after Stop", i)
		}
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "round.fee_swept", Timestamp: 5, Payload: map[string]int{"amount": 10}})
	require.NoError(t, err)
	assert.Equal(t,
		"id: 1\nevent: round.fee_swept\ndata: {\"id\":\"1\",\"type\":\"round.fee_swept\",\"timestamp\":5,\"payload\":{\"amount\":10}}\n\n",
		string(msg))

	msg, err = FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: keepalive\n"))
}

func TestSubscriber_ForwardsFeedTypesOnly(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)

	c := hub.Register(nil)
	waitClients(t, hub, 1)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.Event{Type: event.LedgerCredited, Payload: domain.LedgerCreditedPayload{Account: "alice"}}))
	require.NoError(t, bus.Publish(ctx, event.Event{Type: event.FeeSwept, Payload: domain.FeeSweptPayload{RoundIndex: 2, Amount: 10}}))

	got := receive(t, c)
	assert.Equal(t, string(event.FeeSwept), got.Type)
	assert.Equal(t, domain.FeeSweptPayload{RoundIndex: 2, Amount: 10}, got.Payload)
}

// readEvent reads one "event:/data:" block from an SSE stream
func readEvent(t *testing.T, r *bufio.Reader) (string, Event) {
	t.Helper()
	var typ string
	var evt Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return typ, evt
		case strings.HasPrefix(line, "event: "):
			typ = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &evt))
		}
	}
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=round.winner_selected", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)
	typ, _ := readEvent(t, r)
	assert.Equal(t, EventTypeConnected, typ)

	waitClients(t, hub, 1)
	hub.Broadcast(string(event.RoundCreated), domain.RoundCreatedPayload{RoundIndex: 4})
	hub.Broadcast(string(event.WinnerSelected), domain.WinnerSelectedPayload{RoundIndex: 4, Winner: "bob"})

	typ, evt := readEvent(t, r)
	assert.Equal(t, string(event.WinnerSelected), typ)
	payload, ok := evt.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bob", payload["winner"])

	cancel()
	waitClients(t, hub, 0)
}

func TestHandler_HubStopped(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
