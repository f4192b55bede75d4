package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/randomness"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{appName}, args...))
	return out.String(), err
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("RANDOMNESS_SOURCE", "crypto")
	t.Setenv("EVENT_DEADLETTER_PATH", filepath.Join(t.TempDir(), "dl.jsonl"))
}

func TestVRFKeygen(t *testing.T) {
	out, err := runApp(t, "vrf-keygen")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "VRF_PRIVATE_KEY="))

	src, err := randomness.NewVRFSourceFromHex(strings.TrimPrefix(lines[0], "VRF_PRIVATE_KEY="))
	require.NoError(t, err)
	pub, err := src.PublicKeyHex()
	require.NoError(t, err)
	assert.Equal(t, "# public key: "+pub, lines[1])
}

func TestToken(t *testing.T) {
	setEnv(t)

	out, err := runApp(t, "token", "--subject", "alice")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3, "JWT has three segments")

	_, err = runApp(t, "token")
	assert.ErrorIs(t, err, errSubjectRequired)
}

func TestInit(t *testing.T) {
	setEnv(t)

	path := filepath.Join(t.TempDir(), "bootstrap.toml")
	require.NoError(t, os.WriteFile(path, []byte("admin = \"ops\"\nplatform_fee = 250\nteam_wallet = \"treasury\"\ncreate_first_round = true\n"), 0o600))

	out, err := runApp(t, "init", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "admin=ops fee=250bp treasury=treasury")
}

func TestInit_MissingFile(t *testing.T) {
	setEnv(t)

	_, err := runApp(t, "init", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestMigrate_RequiresPostgres(t *testing.T) {
	setEnv(t)

	_, err := runApp(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER=postgres")
}
