package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/database/storetest"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

func TestJackpotRepository_Contract(t *testing.T) {
	storetest.RunJackpotContract(t, func(t *testing.T) repository.Jackpot {
		return NewJackpotRepository()
	})
}

func TestBeginJackpotTx_RespectsContext(t *testing.T) {
	repo := NewJackpotRepository()
	tx, err := repo.BeginJackpotTx(context.Background())
	require.NoError(t, err)
	defer repository.SafeRollback(context.Background(), tx)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = repo.BeginJackpotTx(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEventLogRepository_Contract(t *testing.T) {
	storetest.RunEventLogContract(t, func(t *testing.T) repository.EventLog {
		return NewEventLogRepository()
	})
}
