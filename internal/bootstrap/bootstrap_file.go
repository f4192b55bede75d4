package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
)

// ApplyBootstrap creates the config record, funds the listed accounts and
// optionally opens round 1, all as the bootstrap admin. It stops at the first
// failure; a second run fails with domain.ErrAlreadyInitialized.
func ApplyBootstrap(ctx context.Context, svc jackpot.Service, b *config.Bootstrap) (*domain.Config, error) {
	cfg, err := svc.Initialize(ctx, b.ConfigInput())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitialize, err)
	}
	slog.Info(LogMsgJackpotInitialized, "admin", cfg.Admin, "platform_fee", cfg.PlatformFee, "team_wallet", cfg.TeamWallet)

	for _, c := range b.Credits {
		balance, err := svc.Credit(ctx, cfg.Admin, c.Account, c.Amount)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedCreditAccount, c.Account, err)
		}
		slog.Info(LogMsgAccountCredited, "account", c.Account, "amount", c.Amount, "balance", balance)
	}

	if b.CreateFirstRound {
		round, err := svc.CreateRound(ctx, cfg.Admin, cfg.RoundCounter+1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateFirstRound, err)
		}
		slog.Info(LogMsgFirstRoundCreated, "round", round.Index)
	}

	return cfg, nil
}
