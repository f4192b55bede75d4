package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Jackpot_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage
// one timer per round
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uint64]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uint64]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) stopTimer(round uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[round]; ok {
		timer.Stop()
		delete(w.timers, round)
	}
}

// schedule runs fn after d, replacing any timer already pending for round.
// fn runs tracked by the wait group and is skipped after shutdown.
func (w *BaseWorker) schedule(round uint64, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[round]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.wg.Add(1)
		defer w.wg.Done()

		w.mu.Lock()
		if w.timers[round] == timer {
			delete(w.timers, round)
		}
		w.mu.Unlock()

		fn()
	})
	w.timers[round] = timer
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	close(w.shutdown)

	// Cancel all pending timers
	w.mu.Lock()
	for round, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "round", round)
	}
	w.timers = make(map[uint64]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
