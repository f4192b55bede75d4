package jackpot

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// ExpireRound flags the current round as expired once its deadline has
// passed. Joins are already rejected after the deadline; the flag makes the
// state explicit for readers.
func (s *service) ExpireRound(ctx context.Context, caller domain.Identity, index uint64) (round *domain.GameRound, err error) {
	ctx, span := s.startSpan(ctx, SpanExpireRound, index)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgExpireRoundCalled, "caller", caller, "round", index)

	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		cfg, err := s.lockAdmin(ctx, tx, caller)
		if err != nil {
			return err
		}
		round, err = s.currentRound(ctx, tx, cfg, index)
		if err != nil {
			return err
		}
		if cfg.IsCompleted || round.Completed {
			return domain.ErrRoundAlreadyCompleted
		}
		if round.HasWinner() {
			return fmt.Errorf("%w (winner selected)", domain.ErrRoundClosed)
		}
		if round.IsExpired {
			return domain.ErrRoundExpired
		}
		if round.EndsAt == nil {
			return domain.ErrRoundHasNoDeadline
		}
		if !round.DeadlinePassed(s.now()) {
			return fmt.Errorf("%w (ends at %s)", domain.ErrRoundNotExpired, round.EndsAt.Format(time.RFC3339))
		}

		round.IsExpired = true
		return s.saveRound(ctx, tx, round)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgRoundExpired, "round", round.Index, "deposits", round.DepositCount(), "total", round.TotalAmount)
	s.publish(ctx, event.NewRoundExpiredEvent(round))
	return round.Clone(), nil
}
