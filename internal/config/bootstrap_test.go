package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

const sampleBootstrap = `
admin = "ops"
platform_fee = 500
team_wallet = "treasury"
create_first_round = true

[[credit]]
account = "alice"
amount = 1000

[[credit]]
account = "bob"
amount = 250
`

func TestLoadBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bootstrap.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBootstrap), 0o600))

	b, err := LoadBootstrap(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ConfigInput{Admin: "ops", PlatformFee: 500, TeamWallet: "treasury"}, b.ConfigInput())
	assert.True(t, b.CreateFirstRound)
	assert.Equal(t, []BootstrapCredit{{Account: "alice", Amount: 1000}, {Account: "bob", Amount: 250}}, b.Credits)
}

func TestLoadBootstrap_MissingFile(t *testing.T) {
	_, err := LoadBootstrap(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextReadBootstrap)
}

func TestParseBootstrap_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{"syntax", `admin = `, nil, ErrContextParseBootstrap},
		{"unknown key", "admin = \"a\"\nteam_wallet = \"t\"\nplatfrom_fee = 5\n", nil, "platfrom_fee"},
		{"missing admin", "team_wallet = \"t\"\n", domain.ErrInvalidInput, ""},
		{"fee too high", "admin = \"a\"\nteam_wallet = \"t\"\nplatform_fee = 10001\n", domain.ErrInvalidPlatformFee, ""},
		{"zero credit", "admin = \"a\"\nteam_wallet = \"t\"\n[[credit]]\naccount = \"x\"\namount = 0\n", domain.ErrInvalidInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBootstrap(tt.data)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
