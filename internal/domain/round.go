package domain

import "fmt"

// DefaultMaxDeposits is the number of deposit entries a round accepts when no
// capacity is configured
const DefaultMaxDeposits = 100

// RecordDeposit appends a deposit and grows the running total.
// capacity <= 0 means DefaultMaxDeposits. Nothing is mutated on error.
func (r *GameRound) RecordDeposit(depositor Identity, amount uint64, capacity int) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	if depositor.IsZero() {
		return fmt.Errorf("%w: depositor is required", ErrInvalidInput)
	}
	if capacity <= 0 {
		capacity = DefaultMaxDeposits
	}
	if len(r.Deposits) >= capacity {
		return fmt.Errorf("%w (max %d)", ErrRoundCapacityExceeded, capacity)
	}
	if amount > MaxAmount || r.TotalAmount > MaxAmount-amount {
		return ErrAmountOverflow
	}

	r.Deposits = append(r.Deposits, Deposit{Depositor: depositor, Amount: amount})
	r.TotalAmount += amount
	return nil
}

// SelectWinner maps random onto the cumulative deposit intervals and records
// the entry whose interval contains random mod TotalAmount.
// Each depositor wins with probability amount / TotalAmount.
func (r *GameRound) SelectWinner(random uint64) error {
	if r.HasWinner() {
		return ErrWinnerAlreadySet
	}
	if r.TotalAmount == 0 {
		return ErrEmptyPool
	}

	pick := random % r.TotalAmount
	for i, d := range r.Deposits {
		if pick < d.Amount {
			winner := d.Depositor
			r.Winner = &winner
			r.WinnerIndex = uint64(i)
			r.WinnerDepositAmount = d.Amount
			r.Rand = random
			return nil
		}
		pick -= d.Amount
	}

	return fmt.Errorf("%w: total %d does not match deposits", ErrLedgerInconsistent, r.TotalAmount)
}

// SumDeposits recomputes the total from the deposit entries
func (r *GameRound) SumDeposits() (uint64, error) {
	var sum uint64
	for _, d := range r.Deposits {
		if d.Amount > MaxAmount || sum > MaxAmount-d.Amount {
			return 0, ErrAmountOverflow
		}
		sum += d.Amount
	}
	return sum, nil
}
