package domain

import "time"

// RoundCreatedPayload fires when a new round opens
type RoundCreatedPayload struct {
	RoundIndex uint64     `json:"round_index"`
	StartedAt  time.Time  `json:"started_at"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	Timestamp  int64      `json:"timestamp"`
}

// DepositRecordedPayload fires after a successful join
type DepositRecordedPayload struct {
	RoundIndex   uint64   `json:"round_index"`
	Depositor    Identity `json:"depositor"`
	Amount       uint64   `json:"amount"`
	TotalAmount  uint64   `json:"total_amount"`
	DepositCount int      `json:"deposit_count"`
	Timestamp    int64    `json:"timestamp"`
}

// WinnerSelectedPayload fires when the draw has been recorded
type WinnerSelectedPayload struct {
	RoundIndex          uint64   `json:"round_index"`
	Winner              Identity `json:"winner"`
	WinnerIndex         uint64   `json:"winner_index"`
	WinnerDepositAmount uint64   `json:"winner_deposit_amount"`
	TotalAmount         uint64   `json:"total_amount"`
	Rand                uint64   `json:"rand"`
	RandSource          string   `json:"rand_source"`
	Timestamp           int64    `json:"timestamp"`
}

// RewardClaimedPayload fires when the winner has been paid
type RewardClaimedPayload struct {
	RoundIndex   uint64   `json:"round_index"`
	Winner       Identity `json:"winner"`
	RewardAmount uint64   `json:"reward_amount"`
	FeeAmount    uint64   `json:"fee_amount"`
	Timestamp    int64    `json:"timestamp"`
}

// FeeSweptPayload fires when the round is completed
type FeeSweptPayload struct {
	RoundIndex uint64   `json:"round_index"`
	TeamWallet Identity `json:"team_wallet"`
	Amount     uint64   `json:"amount"`
	Timestamp  int64    `json:"timestamp"`
}

// RoundExpiredPayload fires when a round is flagged expired
type RoundExpiredPayload struct {
	RoundIndex   uint64 `json:"round_index"`
	TotalAmount  uint64 `json:"total_amount"`
	DepositCount int    `json:"deposit_count"`
	Timestamp    int64  `json:"timestamp"`
}

// LedgerCreditedPayload fires when an account is topped up
type LedgerCreditedPayload struct {
	Account   Identity `json:"account"`
	Amount    uint64   `json:"amount"`
	Balance   uint64   `json:"balance"`
	Timestamp int64    `json:"timestamp"`
}
