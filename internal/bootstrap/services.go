package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/authority"
	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/identity"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
	"github.com/osse101/Jackpot_Go/internal/randomness"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// NewRandomness builds the draw provider named by RANDOMNESS_SOURCE
func NewRandomness(cfg *config.Config) (randomness.Provider, error) {
	rng, err := randomness.New(randomness.Options{
		Source:        cfg.RandomnessSource,
		VRFPrivateKey: cfg.VRFPrivateKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateRandomness, err)
	}
	slog.Info(LogMsgRandomnessConfigured, "source", rng.Name())
	return rng, nil
}

// NewAuthority returns the config admin check, widened to an allowlist when
// ADMIN_OPERATORS names extra operators
func NewAuthority(cfg *config.Config) authority.AdminAuthority {
	if len(cfg.AdminOperators) == 0 {
		slog.Info(LogMsgAuthorityConfigured, "mode", "config_admin")
		return authority.NewConfigAdmin()
	}

	operators := make([]domain.Identity, 0, len(cfg.AdminOperators))
	for _, op := range cfg.AdminOperators {
		operators = append(operators, domain.Identity(op))
	}
	slog.Info(LogMsgAuthorityConfigured, "mode", "allowlist", "operators", len(operators))
	return authority.NewAllowlist(operators...)
}

// NewTokens builds the bearer token issuer/verifier
func NewTokens(cfg *config.Config) (*identity.Tokens, error) {
	tokens, err := identity.New(identity.Config{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateTokens, err)
	}
	return tokens, nil
}

// NewJackpotService wires the lifecycle controller to its collaborators
func NewJackpotService(cfg *config.Config, repo repository.Jackpot, bus event.Bus) (jackpot.Service, error) {
	rng, err := NewRandomness(cfg)
	if err != nil {
		return nil, err
	}

	return jackpot.NewService(repo, NewAuthority(cfg), rng, bus, jackpot.Options{
		ProgramID:           cfg.ProgramID,
		RoundDuration:       cfg.RoundDuration,
		MaxDepositsPerRound: cfg.MaxDepositsPerRound,
	}), nil
}
