package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// JoinRound records a deposit in the current round and moves amount from the
// depositor's account into the vault. The depositor is the authenticated
// caller.
func (s *service) JoinRound(ctx context.Context, depositor domain.Identity, index, amount uint64) (round *domain.GameRound, err error) {
	ctx, span := s.startSpan(ctx, SpanJoinRound, index)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgJoinRoundCalled, "depositor", depositor, "round", index, "amount", amount)

	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		cfg, err := s.lockConfig(ctx, tx)
		if err != nil {
			return err
		}
		round, err = s.currentRound(ctx, tx, cfg, index)
		if err != nil {
			return err
		}
		if err := s.validateJoinable(cfg, round); err != nil {
			return err
		}

		if err := round.RecordDeposit(depositor, amount, s.maxDeposits); err != nil {
			return err
		}
		if err := s.vault.Deposit(ctx, tx, depositor, amount); err != nil {
			if domain.ErrorKind(err) != "internal" {
				return err
			}
			return fmt.Errorf("%s: %w", ErrContextFailedToEscrow, err)
		}
		return s.saveRound(ctx, tx, round)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgDepositRecorded, "round", round.Index, "depositor", depositor, "amount", amount, "total", round.TotalAmount)
	s.publish(ctx, event.NewDepositRecordedEvent(round, depositor, amount))
	return round.Clone(), nil
}

// validateJoinable reports whether the round is OPEN. A passed deadline closes
// the round even before ExpireRound writes the flag.
func (s *service) validateJoinable(cfg *domain.Config, round *domain.GameRound) error {
	if cfg.IsCompleted || round.Completed {
		return domain.ErrRoundAlreadyCompleted
	}
	if round.HasWinner() {
		return fmt.Errorf("%w (winner selected)", domain.ErrRoundClosed)
	}
	if round.IsExpired || round.DeadlinePassed(s.now()) {
		return domain.ErrRoundExpired
	}
	return nil
}
