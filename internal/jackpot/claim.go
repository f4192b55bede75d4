package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// ClaimReward pays the pool minus the platform fee from the vault to the
// recorded winner. The fee stays in the vault until SweepFee.
func (s *service) ClaimReward(ctx context.Context, caller domain.Identity, index uint64, claimant domain.Identity) (payout *domain.Payout, err error) {
	ctx, span := s.startSpan(ctx, SpanClaimReward, index)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimRewardCalled, "caller", caller, "round", index, "claimant", claimant)

	var round *domain.GameRound
	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		cfg, err := s.lockAdmin(ctx, tx, caller)
		if err != nil {
			return err
		}
		round, err = s.currentRound(ctx, tx, cfg, index)
		if err != nil {
			return err
		}
		if err := validateClaim(round, claimant); err != nil {
			return err
		}

		p, err := domain.ComputePayout(round.TotalAmount, cfg.PlatformFee)
		if err != nil {
			if domain.ErrorKind(err) != "internal" {
				return err
			}
			return fmt.Errorf("%s: %w", ErrContextFailedToComputePayout, err)
		}
		if err := s.vault.Release(ctx, tx, s.vaultCap, claimant, p.Reward); err != nil {
			if domain.ErrorKind(err) != "internal" {
				return err
			}
			return fmt.Errorf("%s: %w", ErrContextFailedToEscrow, err)
		}

		round.RewardAmount = p.Reward
		round.FeeAmount = p.Fee
		round.RewardClaimed = true
		payout = &p
		return s.saveRound(ctx, tx, round)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgRewardClaimed, "round", round.Index, "winner", claimant, "reward", payout.Reward, "fee", payout.Fee)
	s.publish(ctx, event.NewRewardClaimedEvent(round))
	return payout, nil
}

func validateClaim(round *domain.GameRound, claimant domain.Identity) error {
	if !round.HasWinner() {
		return domain.ErrWinnerUnset
	}
	if claimant.IsZero() || *round.Winner != claimant {
		return domain.ErrNotWinner
	}
	if round.TotalAmount == 0 {
		return domain.ErrEmptyPool
	}
	if round.RewardClaimed {
		return domain.ErrRewardAlreadyClaimed
	}
	return nil
}
