// Package jackpot implements the round lifecycle of the pooled-wager jackpot:
// rounds are created, funded by deposits, settled by a weighted draw, paid out
// to the winner and closed by sweeping the platform fee to the treasury.
//
// Every mutating operation runs in one repository transaction that holds the
// config lock, so preconditions checked inside it still hold at commit.
package jackpot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/Jackpot_Go/internal/authority"
	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/escrow"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/randomness"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// Service defines the interface for jackpot operations
type Service interface {
	Initialize(ctx context.Context, input domain.ConfigInput) (*domain.Config, error)
	CreateRound(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
	JoinRound(ctx context.Context, depositor domain.Identity, index, amount uint64) (*domain.GameRound, error)
	SelectWinner(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
	ClaimReward(ctx context.Context, caller domain.Identity, index uint64, claimant domain.Identity) (*domain.Payout, error)
	SweepFee(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
	ExpireRound(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
	Credit(ctx context.Context, caller, account domain.Identity, amount uint64) (uint64, error)

	GetConfig(ctx context.Context) (*domain.Config, error)
	GetRound(ctx context.Context, index uint64) (*domain.GameRound, error)
	GetCurrentRound(ctx context.Context) (*domain.GameRound, error)
	ListRounds(ctx context.Context, limit int) ([]*domain.GameRound, error)
	GetBalance(ctx context.Context, account domain.Identity) (uint64, error)
	ListTransfers(ctx context.Context, account domain.Identity, limit int) ([]domain.Transfer, error)
	VerifyDraw(ctx context.Context, index uint64) (*DrawVerification, error)
	VaultAddress() domain.Identity

	Shutdown(ctx context.Context) error
}

// Options tunes a Service. Zero values select the defaults.
type Options struct {
	// ProgramID seeds the vault derivation
	ProgramID string
	// RoundDuration sets ends_at on new rounds. Zero means rounds never expire.
	RoundDuration time.Duration
	// MaxDepositsPerRound caps deposit entries per round
	MaxDepositsPerRound int
	CacheSize           int
	CacheTTL            time.Duration
	// Now overrides the clock in tests
	Now func() time.Time
}

type service struct {
	repo        repository.Jackpot
	authority   authority.AdminAuthority
	rng         randomness.Provider
	eventBus    event.Bus
	vault       *escrow.Vault
	vaultCap    escrow.Capability
	duration    time.Duration
	maxDeposits int
	now         func() time.Time
	completed   *expirable.LRU[uint64, *domain.GameRound]
	tracer      trace.Tracer
	wg          sync.WaitGroup // Tracks in-flight operations for graceful shutdown
}

// NewService creates a new jackpot service. The vault capability is derived
// here and never leaves the service.
func NewService(repo repository.Jackpot, auth authority.AdminAuthority, rng randomness.Provider, eventBus event.Bus, opts Options) Service {
	if auth == nil {
		auth = authority.NewConfigAdmin()
	}
	if opts.ProgramID == "" {
		opts.ProgramID = DefaultProgramID
	}
	if opts.MaxDepositsPerRound <= 0 {
		opts.MaxDepositsPerRound = domain.DefaultMaxDeposits
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCompletedRoundCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCompletedRoundCacheTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	vault, capability := escrow.Derive(opts.ProgramID, escrow.VaultSeed)

	return &service{
		repo:        repo,
		authority:   auth,
		rng:         rng,
		eventBus:    eventBus,
		vault:       vault,
		vaultCap:    capability,
		duration:    opts.RoundDuration,
		maxDeposits: opts.MaxDepositsPerRound,
		now:         opts.Now,
		completed:   expirable.NewLRU[uint64, *domain.GameRound](opts.CacheSize, nil, opts.CacheTTL),
		tracer:      otel.Tracer(TracerName),
	}
}

// VaultAddress returns the ledger account that custodies round deposits
func (s *service) VaultAddress() domain.Identity {
	return s.vault.Address()
}

// inTx runs fn inside one jackpot transaction and commits it. fn must not
// publish events; callers publish after inTx returns nil.
func (s *service) inTx(ctx context.Context, fn func(tx repository.JackpotTx) error) error {
	tx, err := s.repo.BeginJackpotTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return nil
}

// lockConfig loads the config under the transaction's lock
func (s *service) lockConfig(ctx context.Context, tx repository.JackpotTx) (*domain.Config, error) {
	cfg, err := tx.GetConfigForUpdate(ctx)
	if err != nil {
		if domain.ErrorKind(err) != "internal" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetConfig, err)
	}
	return cfg, nil
}

// lockAdmin loads the config and checks that caller may administer it
func (s *service) lockAdmin(ctx context.Context, tx repository.JackpotTx, caller domain.Identity) (*domain.Config, error) {
	cfg, err := s.lockConfig(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := s.authority.Authorize(ctx, cfg, caller); err != nil {
		return nil, err
	}
	return cfg, nil
}

// currentRound loads round index, which must be the config's current round
func (s *service) currentRound(ctx context.Context, tx repository.JackpotTx, cfg *domain.Config, index uint64) (*domain.GameRound, error) {
	if index != cfg.RoundCounter {
		return nil, fmt.Errorf("%w (current: %d, requested: %d)", domain.ErrInvalidRoundCounter, cfg.RoundCounter, index)
	}
	round, err := tx.GetRound(ctx, index)
	if err != nil {
		if domain.ErrorKind(err) != "internal" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRound, err)
	}
	return round, nil
}

func (s *service) saveRound(ctx context.Context, tx repository.JackpotTx, round *domain.GameRound) error {
	if err := tx.SaveRound(ctx, round); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSaveRound, err)
	}
	return nil
}

// startSpan opens a lifecycle span tagged with the round index. Every
// startSpan must be paired with endSpan.
func (s *service) startSpan(ctx context.Context, name string, index uint64) (context.Context, trace.Span) {
	s.wg.Add(1)
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.Int64("jackpot.round_index", int64(index))))
}

// endSpan records the outcome of a lifecycle operation on its span and log
func (s *service) endSpan(ctx context.Context, span trace.Span, err error) {
	defer s.wg.Done()
	defer span.End()
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	kind := domain.ErrorKind(err)
	span.SetAttributes(attribute.String("jackpot.error_kind", kind))
	span.SetStatus(codes.Error, err.Error())
	if kind == "internal" {
		span.RecordError(err)
		return
	}
	logger.FromContext(ctx).Info(LogMsgOperationRejected, "kind", kind, "error", err)
}

// publish sends an event after commit. Publish failures never undo a
// committed operation.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		logger.FromContext(ctx).Error(LogMsgFailedToPublishEvent, "type", evt.Type, "reason", LogReasonEventBusNil)
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToPublishEvent, "type", evt.Type, "error", err)
	}
}

// Shutdown gracefully shuts down the jackpot service by waiting for all async operations to complete
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDownJackpotService)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgJackpotServiceShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgJackpotServiceShutdownForced)
		return ctx.Err()
	}
}
