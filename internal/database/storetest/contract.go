// Package storetest holds the behavioural contract shared by every
// repository.Jackpot implementation.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// Factory returns an empty store for one subtest
type Factory func(t *testing.T) repository.Jackpot

// RunJackpotContract runs the shared store tests against newStore
func RunJackpotContract(t *testing.T, newStore Factory) {
	t.Run("config lifecycle", func(t *testing.T) { testConfigLifecycle(t, newStore(t)) })
	t.Run("round round-trip", func(t *testing.T) { testRoundRoundTrip(t, newStore(t)) })
	t.Run("rollback discards writes", func(t *testing.T) { testRollback(t, newStore(t)) })
	t.Run("ledger transfers", func(t *testing.T) { testLedger(t, newStore(t)) })
	t.Run("amount ceiling", func(t *testing.T) { testAmountCeiling(t, newStore(t)) })
	t.Run("transactions serialize", func(t *testing.T) { testSerialized(t, newStore(t)) })
	t.Run("list rounds", func(t *testing.T) { testListRounds(t, newStore(t)) })
}

func testConfigLifecycle(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	_, err := store.GetConfig(ctx)
	require.ErrorIs(t, err, domain.ErrNotInitialized)

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	_, err = tx.GetConfigForUpdate(ctx)
	require.ErrorIs(t, err, domain.ErrNotInitialized)

	cfg := &domain.Config{
		Admin:         "admin",
		IsCompleted:   true,
		PlatformFee:   800,
		TeamWallet:    "treasury",
		InitializedAt: time.Unix(1_700_000_000, 0).UTC(),
	}
	require.NoError(t, tx.InsertConfig(ctx, cfg))
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, tx.InsertConfig(ctx, cfg), domain.ErrAlreadyInitialized)

	locked, err := tx.GetConfigForUpdate(ctx)
	require.NoError(t, err)
	locked.RoundCounter = 1
	locked.IsCompleted = false
	require.NoError(t, tx.UpdateConfig(ctx, locked))
	require.NoError(t, tx.Commit(ctx))

	got, err := store.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("admin"), got.Admin)
	assert.Equal(t, uint64(1), got.RoundCounter)
	assert.False(t, got.IsCompleted)
	assert.Equal(t, uint16(800), got.PlatformFee)
	assert.Equal(t, domain.Identity("treasury"), got.TeamWallet)
	assert.True(t, cfg.InitializedAt.Equal(got.InitializedAt))
}

func testRoundRoundTrip(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	_, err := store.GetRound(ctx, 1)
	require.ErrorIs(t, err, domain.ErrRoundNotFound)

	start := time.Unix(1_700_000_000, 0).UTC()
	round := domain.NewGameRound(1, start, time.Minute)
	require.NoError(t, round.RecordDeposit("A", 30, 0))
	require.NoError(t, round.RecordDeposit("B", 70, 0))

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveRound(ctx, round))
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	loaded, err := tx.GetRound(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, loaded.RecordDeposit("C", 5, 0))
	require.NoError(t, loaded.SelectWinner(45))
	loaded.RandSource = "fixed"
	loaded.RandProof = []byte{1, 2, 3}
	loaded.RewardAmount = 95
	loaded.FeeAmount = 10
	loaded.RewardClaimed = true
	require.NoError(t, tx.SaveRound(ctx, loaded))
	require.NoError(t, tx.Commit(ctx))

	got, err := store.GetRound(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Deposit{{Depositor: "A", Amount: 30}, {Depositor: "B", Amount: 70}, {Depositor: "C", Amount: 5}}, got.Deposits)
	assert.Equal(t, uint64(105), got.TotalAmount)
	require.NotNil(t, got.Winner)
	assert.Equal(t, domain.Identity("B"), *got.Winner)
	assert.Equal(t, uint64(1), got.WinnerIndex)
	assert.Equal(t, uint64(70), got.WinnerDepositAmount)
	assert.Equal(t, uint64(45), got.Rand)
	assert.Equal(t, "fixed", got.RandSource)
	assert.Equal(t, []byte{1, 2, 3}, got.RandProof)
	assert.True(t, got.RewardClaimed)
	assert.Equal(t, uint64(95), got.RewardAmount)
	assert.Equal(t, uint64(10), got.FeeAmount)
	require.NotNil(t, got.EndsAt)
	assert.True(t, start.Add(time.Minute).Equal(*got.EndsAt))
	assert.True(t, start.Equal(got.StartedAt))
}

func testRollback(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	_, err = tx.Credit(ctx, "alice", 50)
	require.NoError(t, err)
	require.NoError(t, tx.SaveRound(ctx, domain.NewGameRound(7, time.Now(), 0)))
	require.NoError(t, tx.Rollback(ctx))

	bal, err := store.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, bal)
	_, err = store.GetRound(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrRoundNotFound)

	assert.Error(t, tx.Commit(ctx), "a finished transaction cannot commit")
	repository.SafeRollback(ctx, tx)
}

func testLedger(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	bal, err := tx.Credit(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), bal)
	require.NoError(t, tx.Transfer(ctx, "alice", "vault", 40))

	inTx, err := tx.Balance(ctx, "vault")
	require.NoError(t, err)
	assert.Equal(t, uint64(40), inTx)

	err = tx.Transfer(ctx, "alice", "vault", 61)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	err = tx.Transfer(ctx, "alice", "vault", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	require.NoError(t, tx.Commit(ctx))

	alice, err := store.GetBalance(ctx, "alice")
	require.NoError(t, err)
	vault, err := store.GetBalance(ctx, "vault")
	require.NoError(t, err)
	assert.Equal(t, uint64(60), alice)
	assert.Equal(t, uint64(40), vault)

	transfers, err := store.ListTransfers(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, domain.Identity("vault"), transfers[0].To)
	assert.Equal(t, uint64(40), transfers[0].Amount)
	assert.Equal(t, domain.Identity(""), transfers[1].From)
}

func testAmountCeiling(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	bal, err := tx.Credit(ctx, "whale", domain.MaxAmount)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxAmount, bal)

	_, err = tx.Credit(ctx, "whale", 1)
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)
	_, err = tx.Credit(ctx, "minnow", domain.MaxAmount+1)
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)
	require.NoError(t, tx.Transfer(ctx, "whale", "vault", domain.MaxAmount))
	require.NoError(t, tx.Commit(ctx))

	vault, err := store.GetBalance(ctx, "vault")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxAmount, vault)
	minnow, err := store.GetBalance(ctx, "minnow")
	require.NoError(t, err)
	assert.Zero(t, minnow)

	round := domain.NewGameRound(1, time.Unix(1_700_000_000, 0).UTC(), 0)
	require.NoError(t, round.RecordDeposit("whale", domain.MaxAmount, 0))
	tx, err = store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveRound(ctx, round))
	require.NoError(t, tx.Commit(ctx))

	got, err := store.GetRound(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxAmount, got.TotalAmount)
	require.Len(t, got.Deposits, 1)
	assert.Equal(t, domain.MaxAmount, got.Deposits[0].Amount)
}

func testSerialized(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertConfig(ctx, &domain.Config{Admin: "admin", IsCompleted: true, TeamWallet: "t"}))
	require.NoError(t, tx.Commit(ctx))

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := store.BeginJackpotTx(ctx)
			if !assert.NoError(t, err) {
				return
			}
			defer repository.SafeRollback(ctx, tx)

			cfg, err := tx.GetConfigForUpdate(ctx)
			if !assert.NoError(t, err) {
				return
			}
			cfg.RoundCounter++
			if !assert.NoError(t, tx.UpdateConfig(ctx, cfg)) {
				return
			}
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	cfg, err := store.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(workers), cfg.RoundCounter, "no lost updates")
}

func testListRounds(t *testing.T, store repository.Jackpot) {
	ctx := context.Background()

	tx, err := store.BeginJackpotTx(ctx)
	require.NoError(t, err)
	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, tx.SaveRound(ctx, domain.NewGameRound(i, time.Now(), 0)))
	}
	require.NoError(t, tx.Commit(ctx))

	rounds, err := store.ListRounds(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, uint64(3), rounds[0].Index)
	assert.Equal(t, uint64(2), rounds[1].Index)
}
