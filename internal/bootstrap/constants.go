package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingJackpot     = "Starting jackpot service"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Storage Configuration
// =============================================================================

// Log and error messages for storage initialization
const (
	LogMsgStorageOpened = "Storage opened"

	ErrMsgUnknownStorageDriver  = "unknown storage driver"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrateDatabase = "failed to migrate database"
	ErrMsgFailedCreateBoltDir   = "failed to create bolt directory"
	ErrMsgFailedOpenBolt        = "failed to open bolt store"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Service Wiring
// =============================================================================

// Log and error messages for service construction
const (
	LogMsgRandomnessConfigured = "Randomness source configured"
	LogMsgAuthorityConfigured  = "Admin authority configured"

	ErrMsgFailedCreateRandomness = "failed to create randomness source"
	ErrMsgFailedCreateTokens     = "failed to create token issuer"
)

// =============================================================================
// Bootstrap File
// =============================================================================

const (
	LogMsgJackpotInitialized = "Jackpot initialized from bootstrap file"
	LogMsgAccountCredited    = "Account credited from bootstrap file"
	LogMsgFirstRoundCreated  = "First round created from bootstrap file"

	ErrMsgFailedInitialize       = "failed to initialize jackpot"
	ErrMsgFailedCreditAccount    = "failed to credit account"
	ErrMsgFailedCreateFirstRound = "failed to create first round"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgRoundWorkerSubscribed      = "Round worker subscribed"
	LogMsgAnnouncerRegistered        = "Discord announcer registered"
	LogMsgJournalSubscribed          = "Event journal subscribed"
	ErrMsgFailedSubscribeJournal     = "failed to subscribe event journal"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Announcer Pool
// =============================================================================

const (
	AnnouncerWorkers   = 2
	AnnouncerQueueSize = 64
)

// =============================================================================
// Maintenance
// =============================================================================

const (
	MaintenanceWorkers   = 1
	MaintenanceQueueSize = 4

	JobNameEventLogCleanup = "event_log_cleanup"

	LogMsgMaintenanceScheduled = "Maintenance job scheduled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgRoundWorkerShutdownFailed  = "Round worker shutdown failed"
	LogMsgTracingShutdownFailed      = "Tracing shutdown failed"
	LogMsgStorageCloseFailed         = "Storage close failed"

	// Service names for shutdown logging
	ServiceNameJackpot = "jackpot"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
