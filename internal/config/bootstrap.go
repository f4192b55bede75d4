package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/validation"
)

var bootstrapSchema = validation.NewSchemaValidator()

// Bootstrap is the one-time setup read by jackpotctl init
//
//	admin = "ops"
//	platform_fee = 500
//	team_wallet = "treasury"
//	create_first_round = true
//
//	[[credit]]
//	account = "alice"
//	amount = 1000
type Bootstrap struct {
	Admin            domain.Identity   `toml:"admin"`
	PlatformFee      uint16            `toml:"platform_fee"`
	TeamWallet       domain.Identity   `toml:"team_wallet"`
	CreateFirstRound bool              `toml:"create_first_round"`
	Credits          []BootstrapCredit `toml:"credit"`
}

// BootstrapCredit funds one account during bootstrap
type BootstrapCredit struct {
	Account domain.Identity `toml:"account"`
	Amount  uint64          `toml:"amount"`
}

// ConfigInput returns the initialize payload of the bootstrap file
func (b *Bootstrap) ConfigInput() domain.ConfigInput {
	return domain.ConfigInput{Admin: b.Admin, PlatformFee: b.PlatformFee, TeamWallet: b.TeamWallet}
}

// LoadBootstrap reads and checks a bootstrap TOML file
func LoadBootstrap(path string) (*Bootstrap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadBootstrap, err)
	}
	return ParseBootstrap(string(raw))
}

// ParseBootstrap decodes bootstrap TOML. The document is checked against the
// bootstrap schema first, so unknown keys and wrong types are rejected before
// any value is used.
func ParseBootstrap(data string) (*Bootstrap, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseBootstrap, err)
	}
	if err := bootstrapSchema.ValidateValue(raw, validation.SchemaBootstrap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrContextParseBootstrap, err)
	}

	var b Bootstrap
	if _, err := toml.Decode(data, &b); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseBootstrap, err)
	}

	if b.Admin.IsZero() || b.TeamWallet.IsZero() {
		return nil, fmt.Errorf("%w: admin and team_wallet are required", domain.ErrInvalidInput)
	}
	if b.PlatformFee > domain.BasisPointsDenominator {
		return nil, domain.ErrInvalidPlatformFee
	}
	for i, c := range b.Credits {
		if c.Account.IsZero() || c.Amount == 0 {
			return nil, fmt.Errorf("%w: credit %d needs an account and a positive amount", domain.ErrInvalidInput, i)
		}
	}
	return &b, nil
}
