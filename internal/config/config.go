package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int      `env:"PORT" envDefault:"8080"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"jackpot"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// Storage
	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	BoltPath          string        `env:"BOLT_PATH" envDefault:"data/jackpot.db"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"jackpot"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Auth
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTIssuer      string        `env:"JWT_ISSUER" envDefault:"jackpot"`
	JWTTTL         time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AdminOperators []string      `env:"ADMIN_OPERATORS" envSeparator:","`

	// Jackpot
	ProgramID           string        `env:"PROGRAM_ID" envDefault:"jackpot"`
	RandomnessSource    string        `env:"RANDOMNESS_SOURCE" envDefault:"slothash"`
	VRFPrivateKey       string        `env:"VRF_PRIVATE_KEY"`
	RoundDuration       time.Duration `env:"ROUND_DURATION" envDefault:"0s"`
	MaxDepositsPerRound int           `env:"MAX_DEPOSITS_PER_ROUND" envDefault:"100"`
	AutoSettle          bool          `env:"AUTO_SETTLE" envDefault:"false"`

	// Events
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"3"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Event journal
	EventLogRetentionDays   int           `env:"EVENT_LOG_RETENTION_DAYS" envDefault:"90"`
	EventLogCleanupInterval time.Duration `env:"EVENT_LOG_CLEANUP_INTERVAL" envDefault:"24h"`

	// Notifications
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
	AnnounceLocale   string `env:"ANNOUNCE_LOCALE" envDefault:"en"`

	// Tracing
	OTelEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	var errs []error

	if len(c.JWTSecret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be set to at least %d characters", MinJWTSecretLength))
	}

	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverBolt, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not one of %s", c.StorageDriver, strings.Join(StorageDrivers, ", ")))
	}

	switch c.RandomnessSource {
	case RandomnessSlotHash, RandomnessCrypto:
	case RandomnessVRF:
		if c.VRFPrivateKey == "" {
			errs = append(errs, errors.New("VRF_PRIVATE_KEY must be set when RANDOMNESS_SOURCE=vrf"))
		}
	default:
		errs = append(errs, fmt.Errorf("RANDOMNESS_SOURCE %q is not one of %s", c.RandomnessSource, strings.Join(RandomnessSources, ", ")))
	}

	if c.RoundDuration < 0 {
		errs = append(errs, errors.New("ROUND_DURATION must not be negative"))
	}
	if c.MaxDepositsPerRound <= 0 {
		errs = append(errs, errors.New("MAX_DEPOSITS_PER_ROUND must be positive"))
	}
	if c.EventLogRetentionDays < 0 {
		errs = append(errs, errors.New("EVENT_LOG_RETENTION_DAYS must not be negative"))
	}
	if c.EventLogCleanupInterval <= 0 {
		errs = append(errs, errors.New("EVENT_LOG_CLEANUP_INTERVAL must be positive"))
	}
	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		errs = append(errs, errors.New("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together"))
	}

	return errors.Join(errs...)
}

// AnnouncerEnabled reports whether Discord announcements are configured
func (c *Config) AnnouncerEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
