package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/randomness"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// SelectWinner draws randomness for the current round and records the winner.
// The draw is bound to the round's final deposit list.
func (s *service) SelectWinner(ctx context.Context, caller domain.Identity, index uint64) (round *domain.GameRound, err error) {
	ctx, span := s.startSpan(ctx, SpanSelectWinner, index)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSelectWinnerCalled, "caller", caller, "round", index)

	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		cfg, err := s.lockAdmin(ctx, tx, caller)
		if err != nil {
			return err
		}
		round, err = s.currentRound(ctx, tx, cfg, index)
		if err != nil {
			return err
		}
		if cfg.IsCompleted {
			return domain.ErrRoundAlreadyCompleted
		}
		if round.TotalAmount == 0 {
			return domain.ErrEmptyPool
		}
		if round.HasWinner() {
			return domain.ErrWinnerAlreadySet
		}

		draw, err := s.rng.Draw(ctx, randomness.NewSeed(round))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToDrawRandom, err)
		}
		if err := round.SelectWinner(draw.Value); err != nil {
			return err
		}
		round.RandSource = draw.Source
		round.RandProof = draw.Proof

		return s.saveRound(ctx, tx, round)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgWinnerSelected, "round", round.Index, "winner", *round.Winner, "winnerIndex", round.WinnerIndex, "rand", round.Rand, "source", round.RandSource)
	s.publish(ctx, event.NewWinnerSelectedEvent(round))
	return round.Clone(), nil
}
