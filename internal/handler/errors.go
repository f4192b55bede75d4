package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthenticated       = "Authentication required"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidSince      = "Invalid since parameter (use RFC3339)"

	// Path parameter error messages
	ErrMsgInvalidRoundIndex = "Invalid round index"

	// Admin error messages
	ErrMsgInitializeNotSelf = "The initializing caller must be the configured admin"

	// Ledger error messages
	ErrMsgLedgerNotOwner = "Only the account owner or the admin can read this account"
)

// Log messages
const (
	LogMsgInitializeRejected  = "Initialize rejected: caller is not the requested admin"
	LogMsgInitializedOverHTTP = "Jackpot initialized over HTTP"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgServiceCallFailed   = "Service call failed"
	LogMsgServiceCallRejected = "Service call rejected"
	LogMsgOddRequestFields    = "LogRequestFields called with odd number of arguments"
	LogMsgRequestDetails      = "Request details"
	LogMsgLedgerReadDenied    = "Ledger read denied: caller is neither owner nor admin"
)

// Operation names used for logging and rejection metrics
const (
	OpInitialize    = "initialize"
	OpCredit        = "credit"
	OpGetConfig     = "get_config"
	OpGetRound      = "get_round"
	OpListRounds    = "list_rounds"
	OpCreateRound   = "create_round"
	OpJoinRound     = "join_round"
	OpSelectWinner  = "select_winner"
	OpClaimReward   = "claim_reward"
	OpSweepFee      = "sweep_fee"
	OpExpireRound   = "expire_round"
	OpVerifyDraw    = "verify_draw"
	OpGetBalance    = "get_balance"
	OpListTransfers = "list_transfers"
	OpListEvents    = "list_events"
)

// URL parameter names
const (
	ParamRound   = "round"
	ParamAccount = "account"
	ParamLimit   = "limit"

	// Journal query parameters
	ParamEventType = "event_type"
	ParamSince     = "since"
)
