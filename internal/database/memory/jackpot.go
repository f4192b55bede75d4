// Package memory is a process-local implementation of repository.Jackpot used
// for development and tests. Transactions are serialized by a single writer
// slot and publish their changes by swapping them into the committed state.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// JackpotRepository implements repository.Jackpot in memory
type JackpotRepository struct {
	writer chan struct{}

	mu        sync.RWMutex
	config    *domain.Config
	rounds    map[uint64]*domain.GameRound
	balances  map[domain.Identity]uint64
	transfers []domain.Transfer

	now func() time.Time
}

// NewJackpotRepository creates an empty store
func NewJackpotRepository() *JackpotRepository {
	return &JackpotRepository{
		writer:   make(chan struct{}, 1),
		rounds:   make(map[uint64]*domain.GameRound),
		balances: make(map[domain.Identity]uint64),
		now:      time.Now,
	}
}

// BeginJackpotTx waits for the writer slot and starts a transaction
func (r *JackpotRepository) BeginJackpotTx(ctx context.Context) (repository.JackpotTx, error) {
	select {
	case r.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &jackpotTx{
		repo:     r,
		rounds:   make(map[uint64]*domain.GameRound),
		balances: make(map[domain.Identity]uint64),
	}, nil
}

// GetConfig returns a copy of the config record
func (r *JackpotRepository) GetConfig(_ context.Context) (*domain.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.config == nil {
		return nil, domain.ErrNotInitialized
	}
	return r.config.Clone(), nil
}

// GetRound returns a copy of a round
func (r *JackpotRepository) GetRound(_ context.Context, index uint64) (*domain.GameRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	round, ok := r.rounds[index]
	if !ok {
		return nil, domain.ErrRoundNotFound
	}
	return round.Clone(), nil
}

// ListRounds returns the newest rounds first
func (r *JackpotRepository) ListRounds(_ context.Context, limit int) ([]*domain.GameRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := make([]uint64, 0, len(r.rounds))
	for idx := range r.rounds {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] > indexes[j] })
	if limit > 0 && len(indexes) > limit {
		indexes = indexes[:limit]
	}

	out := make([]*domain.GameRound, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, r.rounds[idx].Clone())
	}
	return out, nil
}

// GetBalance returns an account balance; unknown accounts hold zero
func (r *JackpotRepository) GetBalance(_ context.Context, account domain.Identity) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[account], nil
}

// ListTransfers returns the newest transfers touching account first
func (r *JackpotRepository) ListTransfers(_ context.Context, account domain.Identity, limit int) ([]domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Transfer
	for i := len(r.transfers) - 1; i >= 0; i-- {
		t := r.transfers[i]
		if t.From != account && t.To != account {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Ping always succeeds
func (r *JackpotRepository) Ping(_ context.Context) error {
	return nil
}

type jackpotTx struct {
	repo      *JackpotRepository
	done      bool
	config    *domain.Config
	configSet bool
	rounds    map[uint64]*domain.GameRound
	balances  map[domain.Identity]uint64
	transfers []domain.Transfer
}

func (t *jackpotTx) Commit(_ context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true

	r := t.repo
	r.mu.Lock()
	if t.configSet {
		r.config = t.config
	}
	for idx, round := range t.rounds {
		r.rounds[idx] = round
	}
	for acct, bal := range t.balances {
		r.balances[acct] = bal
	}
	r.transfers = append(r.transfers, t.transfers...)
	r.mu.Unlock()

	<-r.writer
	return nil
}

func (t *jackpotTx) Rollback(_ context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	<-t.repo.writer
	return nil
}

func (t *jackpotTx) GetConfigForUpdate(ctx context.Context) (*domain.Config, error) {
	if t.done {
		return nil, domain.ErrTxClosed
	}
	if t.configSet {
		if t.config == nil {
			return nil, domain.ErrNotInitialized
		}
		return t.config.Clone(), nil
	}
	return t.repo.GetConfig(ctx)
}

func (t *jackpotTx) InsertConfig(ctx context.Context, cfg *domain.Config) error {
	if _, err := t.GetConfigForUpdate(ctx); err == nil {
		return domain.ErrAlreadyInitialized
	} else if !errors.Is(err, domain.ErrNotInitialized) {
		return err
	}
	t.config = cfg.Clone()
	t.configSet = true
	return nil
}

func (t *jackpotTx) UpdateConfig(ctx context.Context, cfg *domain.Config) error {
	if _, err := t.GetConfigForUpdate(ctx); err != nil {
		return err
	}
	t.config = cfg.Clone()
	t.configSet = true
	return nil
}

func (t *jackpotTx) GetRound(ctx context.Context, index uint64) (*domain.GameRound, error) {
	if t.done {
		return nil, domain.ErrTxClosed
	}
	if round, ok := t.rounds[index]; ok {
		return round.Clone(), nil
	}
	return t.repo.GetRound(ctx, index)
}

func (t *jackpotTx) SaveRound(_ context.Context, round *domain.GameRound) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.rounds[round.Index] = round.Clone()
	return nil
}

func (t *jackpotTx) Balance(ctx context.Context, account domain.Identity) (uint64, error) {
	if t.done {
		return 0, domain.ErrTxClosed
	}
	if bal, ok := t.balances[account]; ok {
		return bal, nil
	}
	return t.repo.GetBalance(ctx, account)
}

func (t *jackpotTx) Transfer(ctx context.Context, from, to domain.Identity, amount uint64) error {
	fromBal, err := t.Balance(ctx, from)
	if err != nil {
		return err
	}
	toBal, err := t.Balance(ctx, to)
	if err != nil {
		return err
	}
	newFrom, newTo, err := domain.ApplyTransfer(fromBal, toBal, amount, from == to)
	if err != nil {
		return err
	}
	t.balances[from] = newFrom
	t.balances[to] = newTo
	t.transfers = append(t.transfers, domain.NewTransfer(from, to, amount, t.repo.now()))
	return nil
}

func (t *jackpotTx) Credit(ctx context.Context, account domain.Identity, amount uint64) (uint64, error) {
	bal, err := t.Balance(ctx, account)
	if err != nil {
		return 0, err
	}
	newBal, err := domain.ApplyCredit(bal, amount)
	if err != nil {
		return 0, err
	}
	t.balances[account] = newBal
	t.transfers = append(t.transfers, domain.NewTransfer("", account, amount, t.repo.now()))
	return newBal, nil
}
