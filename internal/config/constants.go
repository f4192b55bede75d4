package config

// MinJWTSecretLength is the shortest accepted JWT_SECRET
const MinJWTSecretLength = 32

// Storage drivers selected by STORAGE_DRIVER
const (
	StorageDriverPostgres = "postgres"
	StorageDriverBolt     = "bolt"
	StorageDriverMemory   = "memory"
)

// StorageDrivers lists the accepted STORAGE_DRIVER values
var StorageDrivers = []string{StorageDriverPostgres, StorageDriverBolt, StorageDriverMemory}

// Randomness sources selected by RANDOMNESS_SOURCE
const (
	RandomnessSlotHash = "slothash"
	RandomnessCrypto   = "crypto"
	RandomnessVRF      = "vrf"
)

// RandomnessSources lists the accepted RANDOMNESS_SOURCE values
var RandomnessSources = []string{RandomnessSlotHash, RandomnessCrypto, RandomnessVRF}

// Error context messages
const (
	ErrContextParseEnv       = "failed to parse environment"
	ErrContextReadBootstrap  = "failed to read bootstrap file"
	ErrContextParseBootstrap = "failed to parse bootstrap file"
)

// DefaultBootstrapPath is where jackpotctl init looks for its TOML file
const DefaultBootstrapPath = "configs/bootstrap.toml"
