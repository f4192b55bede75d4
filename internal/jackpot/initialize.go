package jackpot

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// Initialize creates the singleton config. The first round may be created
// right away, so the config starts with is_completed set.
func (s *service) Initialize(ctx context.Context, input domain.ConfigInput) (cfg *domain.Config, err error) {
	ctx, span := s.startSpan(ctx, SpanInitialize, 0)
	defer func() { s.endSpan(ctx, span, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgInitializeCalled, "admin", input.Admin, "platformFee", input.PlatformFee, "teamWallet", input.TeamWallet)

	if err := validateConfigInput(input); err != nil {
		return nil, err
	}

	cfg = &domain.Config{
		Admin:         input.Admin,
		RoundCounter:  0,
		IsCompleted:   true,
		PlatformFee:   input.PlatformFee,
		TeamWallet:    input.TeamWallet,
		InitializedAt: s.now().UTC(),
	}

	err = s.inTx(ctx, func(tx repository.JackpotTx) error {
		if err := tx.InsertConfig(ctx, cfg); err != nil {
			if errors.Is(err, domain.ErrAlreadyInitialized) {
				return domain.ErrAlreadyInitialized
			}
			return fmt.Errorf("%s: %w", ErrContextFailedToInsertConfig, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgJackpotInitialized, "admin", cfg.Admin, "platformFee", cfg.PlatformFee)
	s.publish(ctx, event.NewJackpotInitializedEvent(cfg))
	return cfg.Clone(), nil
}

func validateConfigInput(input domain.ConfigInput) error {
	if input.PlatformFee > domain.BasisPointsDenominator {
		return fmt.Errorf("%w (got %d)", domain.ErrInvalidPlatformFee, input.PlatformFee)
	}
	if input.Admin.IsZero() {
		return fmt.Errorf("%w: admin is required", domain.ErrInvalidInput)
	}
	if input.TeamWallet.IsZero() {
		return fmt.Errorf("%w: team wallet is required", domain.ErrInvalidInput)
	}
	return nil
}
