package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/database/storetest"
	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

func openTestStore(t *testing.T) *JackpotRepository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "jackpot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestJackpotRepository_Contract(t *testing.T) {
	storetest.RunJackpotContract(t, func(t *testing.T) repository.Jackpot {
		return openTestStore(t)
	})
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestJackpotRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jackpot.db")

	repo, err := Open(path)
	require.NoError(t, err)
	tx, err := repo.BeginJackpotTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertConfig(ctx, &domain.Config{Admin: "admin", IsCompleted: true, TeamWallet: "t"}))
	_, err = tx.Credit(ctx, "alice", 25)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, repo.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	cfg, err := reopened.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("admin"), cfg.Admin)

	bal, err := reopened.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(25), bal)
}

func TestEventLogRepository_Contract(t *testing.T) {
	storetest.RunEventLogContract(t, func(t *testing.T) repository.EventLog {
		return openTestStore(t).EventLog()
	})
}
