package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// GetConfig returns the jackpot config
func (s *service) GetConfig(ctx context.Context) (*domain.Config, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		if domain.ErrorKind(err) != "internal" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetConfig, err)
	}
	return cfg, nil
}

// GetRound returns round index. Completed rounds are served from cache.
func (s *service) GetRound(ctx context.Context, index uint64) (*domain.GameRound, error) {
	if round, ok := s.completed.Get(index); ok {
		return round.Clone(), nil
	}

	round, err := s.repo.GetRound(ctx, index)
	if err != nil {
		if domain.ErrorKind(err) != "internal" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRound, err)
	}
	if round.Completed {
		s.completed.Add(index, round.Clone())
	}
	return round, nil
}

// GetCurrentRound returns the round named by the config's round counter
func (s *service) GetCurrentRound(ctx context.Context) (*domain.GameRound, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.RoundCounter == 0 {
		return nil, fmt.Errorf("%w (no round created yet)", domain.ErrRoundNotFound)
	}
	return s.GetRound(ctx, cfg.RoundCounter)
}

// ListRounds returns the most recent rounds, newest first
func (s *service) ListRounds(ctx context.Context, limit int) ([]*domain.GameRound, error) {
	rounds, err := s.repo.ListRounds(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRounds, err)
	}
	return rounds, nil
}

// GetBalance returns the ledger balance of account
func (s *service) GetBalance(ctx context.Context, account domain.Identity) (uint64, error) {
	if account.IsZero() {
		return 0, fmt.Errorf("%w: account is required", domain.ErrInvalidInput)
	}
	bal, err := s.repo.GetBalance(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetBalance, err)
	}
	return bal, nil
}

// ListTransfers returns the most recent ledger movements touching account
func (s *service) ListTransfers(ctx context.Context, account domain.Identity, limit int) ([]domain.Transfer, error) {
	if account.IsZero() {
		return nil, fmt.Errorf("%w: account is required", domain.ErrInvalidInput)
	}
	transfers, err := s.repo.ListTransfers(ctx, account, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListTransfers, err)
	}
	return transfers, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
