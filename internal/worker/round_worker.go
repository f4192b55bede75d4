package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
)

// RoundService is the part of the jackpot service the round worker drives
type RoundService interface {
	GetConfig(ctx context.Context) (*domain.Config, error)
	GetCurrentRound(ctx context.Context) (*domain.GameRound, error)
	ExpireRound(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
	SelectWinner(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
	ClaimReward(ctx context.Context, caller domain.Identity, index uint64, claimant domain.Identity) (*domain.Payout, error)
	SweepFee(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)
}

// RoundWorker expires rounds at their deadline. With autoSettle it then drives
// selection, payout and the fee sweep as the administrator.
type RoundWorker struct {
	BaseWorker
	service    RoundService
	autoSettle bool
	now        func() time.Time
}

// NewRoundWorker creates a new RoundWorker
func NewRoundWorker(service RoundService, autoSettle bool) *RoundWorker {
	w := &RoundWorker{
		service:    service,
		autoSettle: autoSettle,
		now:        time.Now,
	}
	w.init()
	return w
}

// Start schedules the current round if it is still open on startup
func (w *RoundWorker) Start(ctx context.Context) {
	log := logger.FromContext(ctx)

	round, err := w.service.GetCurrentRound(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotInitialized) && !errors.Is(err, domain.ErrRoundNotFound) {
			log.Error(LogMsgFailedToCheckRoundOnStartup, "error", err)
		}
		return
	}

	if round.Completed || round.EndsAt == nil {
		return
	}
	w.scheduleExpiry(round.Index, *round.EndsAt)
}

// Subscribe subscribes the worker to relevant events
func (w *RoundWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RoundCreated, w.handleRoundCreated)
	bus.Subscribe(event.FeeSwept, w.handleFeeSwept)
}

func (w *RoundWorker) handleRoundCreated(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.RoundCreatedPayload](e.Payload)
	if err != nil {
		return err
	}
	if p.EndsAt != nil {
		w.scheduleExpiry(p.RoundIndex, *p.EndsAt)
	}
	return nil
}

// handleFeeSwept drops the timer of a round closed before its deadline
func (w *RoundWorker) handleFeeSwept(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.FeeSweptPayload](e.Payload)
	if err != nil {
		return err
	}
	w.stopTimer(p.RoundIndex)
	return nil
}

func (w *RoundWorker) scheduleExpiry(index uint64, endsAt time.Time) {
	d := endsAt.Sub(w.now())
	if d < 0 {
		d = 0
	}
	logger.FromContext(context.Background()).Info(LogMsgSchedulingRoundExpiry, "round", index, "duration", d)
	w.schedule(index, d, func() { w.expire(index) })
}

func (w *RoundWorker) expire(index uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), SettleTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	cfg, err := w.service.GetConfig(ctx)
	if err != nil {
		log.Error(LogMsgFailedToExpireRound, "round", index, "error", err)
		return
	}

	log.Info(LogMsgExpiringRound, "round", index)
	if _, err := w.service.ExpireRound(ctx, cfg.Admin, index); err != nil && !errors.Is(err, domain.ErrRoundExpired) {
		// Rounds settled or superseded before their deadline are not an error
		if errors.Is(err, domain.ErrSequencing) {
			log.Info(LogMsgFailedToExpireRound, "round", index, "error", err)
		} else {
			log.Error(LogMsgFailedToExpireRound, "round", index, "error", err)
		}
		return
	}

	if w.autoSettle {
		if err := w.settle(ctx, cfg.Admin, index); err != nil {
			log.Error(LogMsgFailedToSettleRound, "round", index, "error", err)
			return
		}
		log.Info(LogMsgRoundSettled, "round", index)
	}
}

// settle runs select, claim and sweep for an expired round. An empty round
// goes straight to the sweep.
func (w *RoundWorker) settle(ctx context.Context, admin domain.Identity, index uint64) error {
	logger.FromContext(ctx).Info(LogMsgSettlingRound, "round", index)

	round, err := w.service.SelectWinner(ctx, admin, index)
	switch {
	case errors.Is(err, domain.ErrEmptyPool):
	case err != nil:
		return err
	default:
		if _, err := w.service.ClaimReward(ctx, admin, index, *round.Winner); err != nil {
			return err
		}
	}

	_, err = w.service.SweepFee(ctx, admin, index)
	return err
}

// Shutdown gracefully shuts down the round worker, canceling all pending timers
// and waiting for any in-flight settlements to complete
func (w *RoundWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, RoundWorkerName)
}
