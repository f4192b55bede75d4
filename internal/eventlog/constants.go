package eventlog

// Query limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Log messages - service events
const (
	LogMsgFailedToMarshalPayload = "Failed to marshal event payload, skipping journal"
	LogMsgFailedToLogEvent       = "Failed to log event to journal"
	LogMsgEventLogged            = "Event logged to journal"
	LogMsgSubscribed             = "Event journal subscribed to event types"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
	LogMsgCleanupDisabled     = "Event log retention disabled, cleanup skipped"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldRoundIndex    = "round_index"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// Error context messages
const (
	ErrContextGetEvents = "failed to get journal events"
	ErrContextCleanup   = "failed to clean up journal"
)
