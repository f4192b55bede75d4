package domain

import (
	"time"
)

// Identity is an account address on the ledger (a depositor, the admin, the
// treasury or the vault).
type Identity string

// String returns the identity as a plain string
func (i Identity) String() string {
	return string(i)
}

// IsZero reports whether the identity is unset
func (i Identity) IsZero() bool {
	return i == ""
}

// Config is the singleton jackpot configuration record
type Config struct {
	Admin         Identity  `json:"admin"`
	RoundCounter  uint64    `json:"round_counter"`
	IsCompleted   bool      `json:"is_completed"`
	PlatformFee   uint16    `json:"platform_fee"` // basis points
	TeamWallet    Identity  `json:"team_wallet"`
	InitializedAt time.Time `json:"initialized_at"`
}

// Clone returns a copy of the config
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// ConfigInput carries the bootstrap values for Initialize
type ConfigInput struct {
	Admin       Identity `json:"admin" validate:"required,max=128"`
	PlatformFee uint16   `json:"platform_fee" validate:"lte=10000"`
	TeamWallet  Identity `json:"team_wallet" validate:"required,max=128"`
}

// RoundState is the lifecycle state derived from Config and GameRound fields
type RoundState string

const (
	RoundStateAwaitingCreation RoundState = "AwaitingCreation"
	RoundStateOpen             RoundState = "Open"
	RoundStateExpired          RoundState = "Expired"
	RoundStateWinnerSelected   RoundState = "WinnerSelected"
	RoundStateRewardClaimed    RoundState = "RewardClaimed"
	RoundStateCompleted        RoundState = "Completed"
)

// Deposit is a single (depositor, amount) entry of a round
type Deposit struct {
	Depositor Identity `json:"depositor"`
	Amount    uint64   `json:"amount"`
}

// GameRound is the per-round ledger record
type GameRound struct {
	Index               uint64     `json:"round_index"`
	Deposits            []Deposit  `json:"deposits"`
	TotalAmount         uint64     `json:"total_amount"`
	Winner              *Identity  `json:"winner,omitempty"`
	WinnerIndex         uint64     `json:"winner_index"`
	WinnerDepositAmount uint64     `json:"winner_deposit_amount"`
	StartedAt           time.Time  `json:"started_at"`
	EndsAt              *time.Time `json:"ends_at,omitempty"`
	IsExpired           bool       `json:"is_expired"`
	Rand                uint64     `json:"rand"`
	RandSource          string     `json:"rand_source,omitempty"`
	RandProof           []byte     `json:"rand_proof,omitempty"`
	RewardAmount        uint64     `json:"reward_amount"`
	FeeAmount           uint64     `json:"fee_amount"`
	RewardClaimed       bool       `json:"reward_claimed"`
	FeeSwept            uint64     `json:"fee_swept"`
	Completed           bool       `json:"completed"`
}

// NewGameRound returns a fresh, empty round
func NewGameRound(index uint64, startedAt time.Time, duration time.Duration) *GameRound {
	r := &GameRound{
		Index:     index,
		Deposits:  []Deposit{},
		StartedAt: startedAt,
	}
	if duration > 0 {
		endsAt := startedAt.Add(duration)
		r.EndsAt = &endsAt
	}
	return r
}

// Clone returns a deep copy of the round
func (r *GameRound) Clone() *GameRound {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Deposits = make([]Deposit, len(r.Deposits))
	copy(cp.Deposits, r.Deposits)
	if r.Winner != nil {
		w := *r.Winner
		cp.Winner = &w
	}
	if r.EndsAt != nil {
		e := *r.EndsAt
		cp.EndsAt = &e
	}
	if r.RandProof != nil {
		cp.RandProof = append([]byte(nil), r.RandProof...)
	}
	return &cp
}

// HasWinner reports whether a winner has been selected
func (r *GameRound) HasWinner() bool {
	return r.Winner != nil
}

// DeadlinePassed reports whether the round's deadline is at or before now.
// Rounds without a deadline never pass it.
func (r *GameRound) DeadlinePassed(now time.Time) bool {
	return r.EndsAt != nil && !now.Before(*r.EndsAt)
}

// State derives the lifecycle state of the round
func (r *GameRound) State(now time.Time) RoundState {
	switch {
	case r.Completed:
		return RoundStateCompleted
	case r.RewardClaimed:
		return RoundStateRewardClaimed
	case r.HasWinner():
		return RoundStateWinnerSelected
	case r.IsExpired || r.DeadlinePassed(now):
		return RoundStateExpired
	default:
		return RoundStateOpen
	}
}

// DepositCount returns the number of deposit entries
func (r *GameRound) DepositCount() int {
	return len(r.Deposits)
}
