package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "round.created")
const (
	// EventTypeJackpotInitialized is published once when the config record is bootstrapped
	EventTypeJackpotInitialized = "jackpot.initialized"

	// EventTypeRoundCreated is published when the administrator opens a new round
	EventTypeRoundCreated = "round.created"

	// EventTypeDepositRecorded is published after a deposit has moved into the vault
	EventTypeDepositRecorded = "round.deposit_recorded"

	// EventTypeWinnerSelected is published when the winning deposit has been drawn
	EventTypeWinnerSelected = "round.winner_selected"

	// EventTypeRewardClaimed is published when the reward has been released to the winner
	EventTypeRewardClaimed = "round.reward_claimed"

	// EventTypeFeeSwept is published when the vault remainder reached the treasury
	EventTypeFeeSwept = "round.fee_swept"

	// EventTypeRoundExpired is published when an open round passes its deadline
	EventTypeRoundExpired = "round.expired"

	// EventTypeLedgerCredited is published when an account is funded by the administrator
	EventTypeLedgerCredited = "ledger.credited"
)
