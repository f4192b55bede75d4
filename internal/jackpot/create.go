package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// CreateRound opens round index. Only the round after a completed one can be
// created.
func (s *service) CreateRound(ctx context.Context, caller domain.Identity, index uint64) (round *domain.GameRound, err error) {
	ctx, span := s.startSpan(ctx, SpanCreateRound, index)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateRoundCalled, "caller", caller, "round", index)

	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		cfg, err := s.lockAdmin(ctx, tx, caller)
		if err != nil {
			return err
		}
		if !cfg.IsCompleted {
			return fmt.Errorf("%w (round %d)", domain.ErrRoundNotCompleted, cfg.RoundCounter)
		}
		if cfg.RoundCounter == ^uint64(0) || index != cfg.RoundCounter+1 {
			return fmt.Errorf("%w (expected: %d, requested: %d)", domain.ErrInvalidRoundCounter, cfg.RoundCounter+1, index)
		}

		cfg.RoundCounter = index
		cfg.IsCompleted = false
		round = domain.NewGameRound(index, s.now().UTC(), s.duration)

		if err := s.saveRound(ctx, tx, round); err != nil {
			return err
		}
		if err := tx.UpdateConfig(ctx, cfg); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToUpdateConfig, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgRoundCreated, "round", round.Index, "endsAt", round.EndsAt)
	s.publish(ctx, event.NewRoundCreatedEvent(round))
	return round.Clone(), nil
}
