package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameRoundsCreated      = "jackpot_rounds_created_total"
	MetricNameDepositsRecorded   = "jackpot_deposits_total"
	MetricNameAmountDeposited    = "jackpot_deposited_amount_total"
	MetricNameWinnersSelected    = "jackpot_winners_selected_total"
	MetricNameRewardsPaid        = "jackpot_rewards_paid_amount_total"
	MetricNameFeesSwept          = "jackpot_fees_swept_amount_total"
	MetricNameRoundsExpired      = "jackpot_rounds_expired_total"
	MetricNameLedgerCredited     = "jackpot_ledger_credited_amount_total"
	MetricNameCurrentRound       = "jackpot_current_round"
	MetricNameCurrentPool        = "jackpot_current_pool_amount"
	MetricNameOperationsRejected = "jackpot_operations_rejected_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextRoundsCreated      = "Total number of rounds opened"
	HelpTextDepositsRecorded   = "Total number of deposits recorded"
	HelpTextAmountDeposited    = "Total value deposited into rounds"
	HelpTextWinnersSelected    = "Total number of winners selected, by randomness source"
	HelpTextRewardsPaid        = "Total value paid out to winners"
	HelpTextFeesSwept          = "Total value swept to the team wallet"
	HelpTextRoundsExpired      = "Total number of rounds flagged expired"
	HelpTextLedgerCredited     = "Total value credited to ledger accounts"
	HelpTextCurrentRound       = "Index of the most recently created round"
	HelpTextCurrentPool        = "Pool total of the current round"
	HelpTextOperationsRejected = "Total number of rejected lifecycle operations, by error kind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSource    = "source"
	LabelOperation = "operation"
	LabelKind      = "kind"
)

// PathUnmatched labels requests that did not match a route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
