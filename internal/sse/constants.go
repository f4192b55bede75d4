package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for the unregister channel
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Stream control event types. Round events keep their bus type names
// (round.created, round.winner_selected, ...).
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters the stream to a comma separated list of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "Round feed client connected"
	LogMsgClientDisconnected = "Round feed client disconnected"
	LogMsgEventBroadcast     = "Broadcasting round feed event"
	LogMsgEventDropped       = "Round feed buffer full, event dropped"
	LogMsgWriteError         = "Failed to write round feed event"
	LogMsgSubscribed         = "Round feed subscribed to event types"
)

// ErrMsgStreamingUnsupported is returned when the response cannot be flushed
const ErrMsgStreamingUnsupported = "Streaming not supported"
