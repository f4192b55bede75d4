package bootstrap

import (
	"log/slog"

	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from configuration and logs
// the startup banner. Source locations are added in dev.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	log := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	log.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	log.Info(LogMsgStartingJackpot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageDriver,
		"randomness", cfg.RandomnessSource)

	log.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"bolt_path", cfg.BoltPath,
		"port", cfg.Port,
		"round_duration", cfg.RoundDuration,
		"auto_settle", cfg.AutoSettle)

	return log
}
