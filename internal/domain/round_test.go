package domain

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRound(t *testing.T, amounts ...uint64) *GameRound {
	t.Helper()
	r := NewGameRound(1, time.Unix(1_700_000_000, 0), 0)
	for i, a := range amounts {
		require.NoError(t, r.RecordDeposit(Identity(string(rune('A'+i))), a, 0))
	}
	return r
}

func TestRecordDeposit(t *testing.T) {
	tests := []struct {
		name      string
		existing  []uint64
		depositor Identity
		amount    uint64
		capacity  int
		wantErr   error
		wantTotal uint64
	}{
		{name: "first deposit", depositor: "alice", amount: 30, wantTotal: 30},
		{name: "appends to existing", existing: []uint64{30}, depositor: "bob", amount: 70, wantTotal: 100},
		{name: "zero amount", existing: []uint64{30}, depositor: "bob", amount: 0, wantErr: ErrInvalidAmount, wantTotal: 30},
		{name: "missing depositor", depositor: "", amount: 5, wantErr: ErrInvalidInput},
		{name: "capacity reached", existing: []uint64{1, 2}, depositor: "carol", amount: 3, capacity: 2, wantErr: ErrRoundCapacityExceeded, wantTotal: 3},
		{name: "overflow", existing: []uint64{MaxAmount}, depositor: "bob", amount: 1, wantErr: ErrAmountOverflow, wantTotal: MaxAmount},
		{name: "amount above ceiling", depositor: "bob", amount: math.MaxUint64, wantErr: ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRound(t, tt.existing...)
			before := r.DepositCount()

			err := r.RecordDeposit(tt.depositor, tt.amount, tt.capacity)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Equal(t, before, r.DepositCount())
			} else {
				require.NoError(t, err)
				assert.Equal(t, before+1, r.DepositCount())
				assert.Equal(t, tt.depositor, r.Deposits[len(r.Deposits)-1].Depositor)
			}
			assert.Equal(t, tt.wantTotal, r.TotalAmount)
		})
	}
}

func TestRecordDeposit_DefaultCapacity(t *testing.T) {
	r := NewGameRound(1, time.Now(), 0)
	for i := 0; i < DefaultMaxDeposits; i++ {
		require.NoError(t, r.RecordDeposit("alice", 1, 0))
	}

	err := r.RecordDeposit("alice", 1, 0)
	assert.ErrorIs(t, err, ErrRoundCapacityExceeded)
	assert.Equal(t, uint64(DefaultMaxDeposits), r.TotalAmount)
}

func TestAccountingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		r := NewGameRound(1, time.Now(), 0)
		n := rng.Intn(DefaultMaxDeposits) + 1
		for i := 0; i < n; i++ {
			amount := uint64(rng.Intn(1000))
			_ = r.RecordDeposit(Identity("p"), amount, 0)

			sum, err := r.SumDeposits()
			require.NoError(t, err)
			require.Equal(t, sum, r.TotalAmount, "total must equal sum of deposits after every join")
		}
	}
}

func TestSelectWinner_Deterministic(t *testing.T) {
	r1 := newTestRound(t, 30, 70)
	r2 := newTestRound(t, 30, 70)

	require.NoError(t, r1.SelectWinner(12345))
	require.NoError(t, r2.SelectWinner(12345))

	assert.Equal(t, *r1.Winner, *r2.Winner)
	assert.Equal(t, r1.WinnerIndex, r2.WinnerIndex)
}

func TestSelectWinner_CumulativeIntervals(t *testing.T) {
	amounts := []uint64{10, 20, 70}
	r := newTestRound(t, amounts...)

	for pick := uint64(0); pick < r.TotalAmount; pick++ {
		cp := r.Clone()
		require.NoError(t, cp.SelectWinner(pick))

		var lower uint64
		for j := uint64(0); j < cp.WinnerIndex; j++ {
			lower += amounts[j]
		}
		upper := lower + amounts[cp.WinnerIndex]
		assert.True(t, lower <= pick && pick < upper, "pick %d outside [%d,%d)", pick, lower, upper)
		assert.Equal(t, amounts[cp.WinnerIndex], cp.WinnerDepositAmount)
	}
}

func TestSelectWinner_Convergence(t *testing.T) {
	r := newTestRound(t, 10, 20, 70)
	wins := make([]int, 3)

	for rv := uint64(0); rv < 100; rv++ {
		cp := r.Clone()
		require.NoError(t, cp.SelectWinner(rv))
		wins[cp.WinnerIndex]++
	}

	assert.Equal(t, []int{10, 20, 70}, wins)
}

func TestSelectWinner_Errors(t *testing.T) {
	t.Run("empty pool", func(t *testing.T) {
		r := newTestRound(t)
		err := r.SelectWinner(1)
		assert.ErrorIs(t, err, ErrEmptyPool)
		assert.False(t, r.HasWinner())
	})

	t.Run("winner already set", func(t *testing.T) {
		r := newTestRound(t, 30, 70)
		require.NoError(t, r.SelectWinner(45))
		winner := *r.Winner

		err := r.SelectWinner(0)
		assert.ErrorIs(t, err, ErrWinnerAlreadySet)
		assert.ErrorIs(t, err, ErrSequencing)
		assert.Equal(t, winner, *r.Winner)
		assert.Equal(t, uint64(45), r.Rand)
	})

	t.Run("corrupted total", func(t *testing.T) {
		r := newTestRound(t, 30, 70)
		r.TotalAmount = 200
		err := r.SelectWinner(150)
		assert.ErrorIs(t, err, ErrLedgerInconsistent)
		assert.False(t, r.HasWinner())
	})
}

func TestSelectWinner_Scenario(t *testing.T) {
	r := NewGameRound(1, time.Now(), 0)
	require.NoError(t, r.RecordDeposit("A", 30, 0))
	require.NoError(t, r.RecordDeposit("B", 70, 0))

	require.NoError(t, r.SelectWinner(45))

	assert.Equal(t, Identity("B"), *r.Winner)
	assert.Equal(t, uint64(1), r.WinnerIndex)
	assert.Equal(t, uint64(70), r.WinnerDepositAmount)
}

func TestGameRound_State(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	r := NewGameRound(3, start, time.Minute)

	assert.Equal(t, RoundStateOpen, r.State(start))
	assert.Equal(t, RoundStateExpired, r.State(start.Add(time.Minute)))

	require.NoError(t, r.RecordDeposit("A", 5, 0))
	require.NoError(t, r.SelectWinner(0))
	assert.Equal(t, RoundStateWinnerSelected, r.State(start))

	r.RewardClaimed = true
	assert.Equal(t, RoundStateRewardClaimed, r.State(start))

	r.Completed = true
	assert.Equal(t, RoundStateCompleted, r.State(start))
}

func TestGameRound_CloneIsDeep(t *testing.T) {
	r := newTestRound(t, 1, 2)
	require.NoError(t, r.SelectWinner(0))

	cp := r.Clone()
	cp.Deposits[0].Amount = 99
	*cp.Winner = "Z"

	assert.Equal(t, uint64(1), r.Deposits[0].Amount)
	assert.Equal(t, Identity("A"), *r.Winner)
}
