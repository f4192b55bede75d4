package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("JWT_SECRET", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateEnv_PostgresNeedsDBSettings(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("JWT_SECRET", "x")
	for _, v := range RequiredPostgresEnvVars {
		t.Setenv(v, "")
	}

	t.Run("memory driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("postgres driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", StorageDriverPostgres)
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
	})
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_DRIVER", StorageDriverPostgres)
	t.Setenv("DB_PASSWORD", ExampleDBPassword)
	t.Setenv("JWT_SECRET", ExampleJWTSecret)
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "db")
	t.Setenv("RANDOMNESS_SOURCE", RandomnessVRF)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "JWT_SECRET")

	t.Run("slothash randomness warns", func(t *testing.T) {
		t.Setenv("RANDOMNESS_SOURCE", RandomnessSlotHash)
		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Len(t, warnings, 3)
	})
}
