package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeNumericOutOfRange is raised when a BIGINT column overflows
	PgErrorCodeNumericOutOfRange = "22003"

	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation = "23514"
)

// Config singleton row id
const configRowID = 1

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - Jackpot Operations
const (
	ErrMsgFailedToGetConfig      = "failed to get jackpot config"
	ErrMsgFailedToInsertConfig   = "failed to insert jackpot config"
	ErrMsgFailedToUpdateConfig   = "failed to update jackpot config"
	ErrMsgFailedToGetRound       = "failed to get round"
	ErrMsgFailedToGetDeposits    = "failed to get round deposits"
	ErrMsgFailedToSaveRound      = "failed to save round"
	ErrMsgFailedToSaveDeposits   = "failed to save round deposits"
	ErrMsgFailedToListRounds     = "failed to list rounds"
	ErrMsgFailedToGetBalance     = "failed to get balance"
	ErrMsgFailedToUpdateBalance  = "failed to update balance"
	ErrMsgFailedToRecordTransfer = "failed to record transfer"
	ErrMsgFailedToListTransfers  = "failed to list transfers"
	ErrMsgInvalidRandValue       = "invalid stored rand value"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent     = "failed to log event"
	ErrMsgFailedToGetEvents    = "failed to get events"
	ErrMsgFailedToCleanupEvent = "failed to clean up events"
)
