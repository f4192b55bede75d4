package bootstrap

import (
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/eventlog"
	"github.com/osse101/Jackpot_Go/internal/scheduler"
	"github.com/osse101/Jackpot_Go/internal/worker"
)

// StartMaintenance starts the pool and scheduler that run periodic jobs.
// Both must be stopped through GracefulShutdown.
func StartMaintenance(cfg *config.Config, journal eventlog.Service) (*scheduler.Scheduler, *worker.Pool) {
	pool := worker.NewPool(MaintenanceWorkers, MaintenanceQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if journal != nil && cfg.EventLogRetentionDays > 0 {
		sched.Schedule(JobNameEventLogCleanup, cfg.EventLogCleanupInterval,
			eventlog.NewCleanupJob(journal, cfg.EventLogRetentionDays))
		slog.Info(LogMsgMaintenanceScheduled,
			"job", JobNameEventLogCleanup,
			"interval", cfg.EventLogCleanupInterval,
			"retention_days", cfg.EventLogRetentionDays)
	}
	return sched, pool
}
