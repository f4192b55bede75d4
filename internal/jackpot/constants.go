package jackpot

import "time"

// ============================================================================
// Defaults
// ============================================================================

// DefaultProgramID identifies this deployment when deriving the vault
const DefaultProgramID = "jackpot"

// DefaultCompletedRoundCacheSize bounds the completed-round read cache
const DefaultCompletedRoundCacheSize = 256

// DefaultCompletedRoundCacheTTL is how long a completed round stays cached.
// Completed rounds never change so this only bounds memory.
const DefaultCompletedRoundCacheTTL = 30 * time.Minute

// DefaultListLimit caps list reads when the caller passes no limit
const DefaultListLimit = 50

// MaxListLimit is the largest page a list read returns
const MaxListLimit = 500

// TracerName is the instrumentation scope of lifecycle spans
const TracerName = "github.com/osse101/Jackpot_Go/internal/jackpot"

// Span names
const (
	SpanInitialize   = "jackpot.Initialize"
	SpanCreateRound  = "jackpot.CreateRound"
	SpanJoinRound    = "jackpot.JoinRound"
	SpanSelectWinner = "jackpot.SelectWinner"
	SpanClaimReward  = "jackpot.ClaimReward"
	SpanSweepFee     = "jackpot.SweepFee"
	SpanExpireRound  = "jackpot.ExpireRound"
	SpanCredit       = "jackpot.Credit"
)

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgInitializeCalled   = "Initialize called"
	LogMsgCreateRoundCalled  = "CreateRound called"
	LogMsgJoinRoundCalled    = "JoinRound called"
	LogMsgSelectWinnerCalled = "SelectWinner called"
	LogMsgClaimRewardCalled  = "ClaimReward called"
	LogMsgSweepFeeCalled     = "SweepFee called"
	LogMsgExpireRoundCalled  = "ExpireRound called"
	LogMsgCreditCalled       = "Credit called"
)

// Outcome messages
const (
	LogMsgJackpotInitialized = "Jackpot initialized"
	LogMsgRoundCreated       = "Round created"
	LogMsgDepositRecorded    = "Deposit recorded"
	LogMsgWinnerSelected     = "Winner selected"
	LogMsgRewardClaimed      = "Reward claimed"
	LogMsgFeeSwept           = "Fee swept, round completed"
	LogMsgRoundExpired       = "Round expired"
	LogMsgAccountCredited    = "Account credited"
	LogMsgOperationRejected  = "Lifecycle operation rejected"
)

// Warning/Info messages
const (
	LogMsgFailedToPublishEvent         = "Failed to publish event"
	LogMsgShuttingDownJackpotService   = "Shutting down jackpot service, waiting for async operations..."
	LogMsgJackpotServiceShutdownDone   = "Jackpot service shutdown complete"
	LogMsgJackpotServiceShutdownForced = "Jackpot service shutdown forced by context cancellation"
)

// Log reasons
const (
	LogReasonEventBusNil = "eventBus is nil"
)

// ============================================================================
// Error Messages (local to jackpot service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx       = "failed to begin jackpot transaction"
	ErrContextFailedToCommitTx      = "failed to commit jackpot transaction"
	ErrContextFailedToGetConfig     = "failed to get jackpot config"
	ErrContextFailedToInsertConfig  = "failed to insert jackpot config"
	ErrContextFailedToUpdateConfig  = "failed to update jackpot config"
	ErrContextFailedToGetRound      = "failed to get round"
	ErrContextFailedToSaveRound     = "failed to save round"
	ErrContextFailedToListRounds    = "failed to list rounds"
	ErrContextFailedToDrawRandom    = "failed to draw randomness"
	ErrContextFailedToComputePayout = "failed to compute payout"
	ErrContextFailedToEscrow        = "failed to move escrowed funds"
	ErrContextFailedToCredit        = "failed to credit account"
	ErrContextFailedToGetBalance    = "failed to get balance"
	ErrContextFailedToListTransfers = "failed to list transfers"
)
