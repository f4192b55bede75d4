package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerQueueFull is logged when a job is dropped because the queue is full
const LogMsgWorkerQueueFull = "Worker queue full, job dropped"

// ============================================================================
// Log Messages - Round Worker
// ============================================================================

// Log messages for round worker operations
const (
	LogMsgFailedToCheckRoundOnStartup = "Failed to check current round on startup"
	LogMsgSchedulingRoundExpiry       = "Scheduling round expiry"
	LogMsgExpiringRound               = "Expiring round"
	LogMsgFailedToExpireRound         = "Failed to expire round"
	LogMsgSettlingRound               = "Auto-settling round"
	LogMsgFailedToSettleRound         = "Failed to auto-settle round"
	LogMsgRoundSettled                = "Round auto-settled"
)

// RoundWorkerName names the round worker in shutdown logs
const RoundWorkerName = "round worker"

// SettleTimeout bounds one expiry/settlement pass
const SettleTimeout = 30 * time.Second

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
