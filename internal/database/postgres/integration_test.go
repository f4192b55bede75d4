package postgres

import (
	"context"
	"flag"
	"math"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/database"
	"github.com/osse101/Jackpot_Go/internal/database/storetest"
	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		ctx := context.Background()
		testDBConnString, terminate = setupContainer(ctx)
		if testDBConnString != "" {
			pool, err := database.NewPool(ctx, testDBConnString, database.PoolConfig{MaxConns: 16})
			if err == nil {
				testPool = pool
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func TestJackpotRepository_Contract(t *testing.T) {
	pool := requirePool(t)

	storetest.RunJackpotContract(t, func(t *testing.T) repository.Jackpot {
		truncateAll(t, pool)
		return NewJackpotRepository(pool)
	})
}

func TestEventLogRepository_Contract(t *testing.T) {
	pool := requirePool(t)

	storetest.RunEventLogContract(t, func(t *testing.T) repository.EventLog {
		truncateAll(t, pool)
		return NewEventLogRepository(pool)
	})
}

func TestJackpotRepository_RejectsOutOfRangeAmounts(t *testing.T) {
	pool := requirePool(t)
	truncateAll(t, pool)
	repo := NewJackpotRepository(pool)
	ctx := context.Background()

	tx, err := repo.BeginJackpotTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.Credit(ctx, "whale", math.MaxInt64+1)
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)
}

func TestJackpotRepository_RandRoundTrip(t *testing.T) {
	pool := requirePool(t)
	truncateAll(t, pool)
	repo := NewJackpotRepository(pool)
	ctx := context.Background()

	round := domain.NewGameRound(1, time.Now().UTC(), 0)
	require.NoError(t, round.RecordDeposit("A", 10, 0))
	require.NoError(t, round.SelectWinner(math.MaxUint64))

	tx, err := repo.BeginJackpotTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveRound(ctx, round))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetRound(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got.Rand, "rand values above int64 survive storage")
}

func TestJackpotRepository_DepositsAreAppendOnly(t *testing.T) {
	pool := requirePool(t)
	truncateAll(t, pool)
	repo := NewJackpotRepository(pool)
	ctx := context.Background()

	round := domain.NewGameRound(1, time.Now().UTC(), 0)
	require.NoError(t, round.RecordDeposit("A", 10, 0))
	require.NoError(t, round.RecordDeposit("B", 20, 0))

	tx, err := repo.BeginJackpotTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveRound(ctx, round))
	require.NoError(t, tx.Commit(ctx))

	truncated := round.Clone()
	truncated.Deposits = truncated.Deposits[:1]

	tx, err = repo.BeginJackpotTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	assert.ErrorIs(t, tx.SaveRound(ctx, truncated), domain.ErrLedgerInconsistent)
}
