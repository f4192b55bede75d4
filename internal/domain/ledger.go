package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxAmount is the largest amount or balance the ledger holds. Every store
// keeps amounts in a signed 64-bit column, so the ceiling is math.MaxInt64 for
// all drivers.
const MaxAmount uint64 = math.MaxInt64

// Transfer is one recorded movement of native value between two accounts.
// Credits from outside the system have an empty From.
type Transfer struct {
	ID        uuid.UUID `json:"id"`
	From      Identity  `json:"from,omitempty"`
	To        Identity  `json:"to"`
	Amount    uint64    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTransfer creates a transfer record stamped with a fresh id
func NewTransfer(from, to Identity, amount uint64, at time.Time) Transfer {
	return Transfer{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Amount:    amount,
		CreatedAt: at,
	}
}

// ApplyTransfer returns the balances of both accounts after moving amount.
// It fails without side effects on a zero amount, a self transfer, missing
// funds or an overflowing destination.
func ApplyTransfer(fromBalance, toBalance, amount uint64, self bool) (uint64, uint64, error) {
	if amount == 0 {
		return 0, 0, ErrInvalidAmount
	}
	if self {
		return 0, 0, fmt.Errorf("%w: source and destination are the same account", ErrInvalidInput)
	}
	if fromBalance < amount {
		return 0, 0, fmt.Errorf("%w: balance %d, need %d", ErrInsufficientFunds, fromBalance, amount)
	}
	if amount > MaxAmount || toBalance > MaxAmount-amount {
		return 0, 0, ErrAmountOverflow
	}
	return fromBalance - amount, toBalance + amount, nil
}

// ApplyCredit returns the balance after adding amount
func ApplyCredit(balance, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, ErrInvalidAmount
	}
	if amount > MaxAmount || balance > MaxAmount-amount {
		return 0, ErrAmountOverflow
	}
	return balance + amount, nil
}
