package repository

import (
	"context"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// Jackpot defines the data access required by the jackpot service.
//
// Every mutating lifecycle operation runs inside one JackpotTx. Implementations
// must serialize JackpotTx instances (row lock on the config record, single
// writer, or mutex) so that the precondition checks made inside a transaction
// still hold when it commits.
type Jackpot interface {
	BeginJackpotTx(ctx context.Context) (JackpotTx, error)

	// Reads outside a transaction. GetConfig returns domain.ErrNotInitialized
	// and GetRound domain.ErrRoundNotFound when the record does not exist.
	GetConfig(ctx context.Context) (*domain.Config, error)
	GetRound(ctx context.Context, index uint64) (*domain.GameRound, error)
	ListRounds(ctx context.Context, limit int) ([]*domain.GameRound, error)
	GetBalance(ctx context.Context, account domain.Identity) (uint64, error)
	ListTransfers(ctx context.Context, account domain.Identity, limit int) ([]domain.Transfer, error)

	Ping(ctx context.Context) error
}

// JackpotTx is one atomic unit of work. Nothing written through it is
// visible to other callers until Commit succeeds.
type JackpotTx interface {
	Tx // Commit, Rollback

	// Config record. GetConfigForUpdate takes the serialization lock.
	GetConfigForUpdate(ctx context.Context) (*domain.Config, error)
	InsertConfig(ctx context.Context, cfg *domain.Config) error
	UpdateConfig(ctx context.Context, cfg *domain.Config) error

	// Round records. SaveRound replaces the stored round, deposits included.
	GetRound(ctx context.Context, index uint64) (*domain.GameRound, error)
	SaveRound(ctx context.Context, round *domain.GameRound) error

	// Ledger accounts. Transfer fails with domain.ErrInsufficientFunds
	// without applying anything when from cannot cover amount.
	Balance(ctx context.Context, account domain.Identity) (uint64, error)
	Transfer(ctx context.Context, from, to domain.Identity, amount uint64) error
	Credit(ctx context.Context, account domain.Identity, amount uint64) (uint64, error)
}
