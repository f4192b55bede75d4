package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// SweepFee releases everything left in the vault to the team wallet and
// completes the round. It requires the reward to have been claimed, except for
// a round that never received a deposit, which has nothing payable.
func (s *service) SweepFee(ctx context.Context, caller domain.Identity, index uint64) (round *domain.GameRound, err error) {
	ctx, span := s.startSpan(ctx, SpanSweepFee, index)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSweepFeeCalled, "caller", caller, "round", index)

	var teamWallet domain.Identity
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
		if !s.sweepable(round) {
			return domain.ErrRewardNotClaimed
		}

		swept, err := s.vault.Drain(ctx, tx, s.vaultCap, cfg.TeamWallet)
		if err != nil {
			if domain.ErrorKind(err) != "internal" {
				return err
			}
			return fmt.Errorf("%s: %w", ErrContextFailedToEscrow, err)
		}

		round.FeeSwept = swept
		round.Completed = true
		cfg.IsCompleted = true
		teamWallet = cfg.TeamWallet

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

	s.completed.Add(round.Index, round.Clone())
	log.Info(LogMsgFeeSwept, "round", round.Index, "teamWallet", teamWallet, "amount", round.FeeSwept)
	s.publish(ctx, event.NewFeeSweptEvent(round, teamWallet))
	return round.Clone(), nil
}

func (s *service) sweepable(round *domain.GameRound) bool {
	return round.RewardClaimed || round.DepositCount() == 0
}
