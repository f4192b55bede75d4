// Package escrow moves native value in and out of the program-controlled vault.
//
// The vault has no private key. Its address and the capability that authorizes
// withdrawals are both derived from the program identity and a fixed seed, so
// only code that was handed the capability at wiring time can release funds.
package escrow

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// VaultSeed is the derivation seed of the jackpot vault
const VaultSeed = "globlevault"

const (
	addressPrefix    = "vault:"
	addressTag       = "escrow-address"
	capabilityTag    = "escrow-capability"
	addressHexLength = 32
)

// Error context
const (
	ErrContextDeposit = "failed to deposit into vault"
	ErrContextRelease = "failed to release from vault"
	ErrContextBalance = "failed to read vault balance"
)

// Ledger is the low-level value-transfer primitive of the hosting store.
// Transfer must fail with domain.ErrInsufficientFunds when from cannot cover
// amount and must not partially apply.
type Ledger interface {
	Balance(ctx context.Context, account domain.Identity) (uint64, error)
	Transfer(ctx context.Context, from, to domain.Identity, amount uint64) error
}

// Capability authorizes withdrawals from one vault
type Capability struct {
	digest [sha256.Size]byte
}

// Vault is a program-derived holding account
type Vault struct {
	address domain.Identity
	digest  [sha256.Size]byte
}

// Derive returns the vault for (programID, seed) and the capability for it
func Derive(programID, seed string) (*Vault, Capability) {
	addrSum := sha256.Sum256([]byte(addressTag + "\x00" + programID + "\x00" + seed))
	address := domain.Identity(addressPrefix + hex.EncodeToString(addrSum[:])[:addressHexLength])

	capSum := sha256.Sum256([]byte(capabilityTag + "\x00" + programID + "\x00" + seed + "\x00" + string(address)))
	return &Vault{address: address, digest: capSum}, Capability{digest: capSum}
}

// Address returns the vault account identity
func (v *Vault) Address() domain.Identity {
	return v.address
}

// Deposit moves amount from the depositor's account into the vault. The
// depositor's signature is checked by the caller.
func (v *Vault) Deposit(ctx context.Context, ledger Ledger, from domain.Identity, amount uint64) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}
	if err := ledger.Transfer(ctx, from, v.address, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeposit, err)
	}
	return nil
}

// Release moves amount from the vault to to. The capability must be the one
// derived together with this vault.
func (v *Vault) Release(ctx context.Context, ledger Ledger, capability Capability, to domain.Identity, amount uint64) error {
	if !v.authorized(capability) {
		return domain.ErrInvalidCapability
	}
	if to.IsZero() {
		return fmt.Errorf("%w: destination is required", domain.ErrInvalidInput)
	}
	if amount == 0 {
		return nil
	}
	if err := ledger.Transfer(ctx, v.address, to, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRelease, err)
	}
	return nil
}

// Drain releases the vault's entire balance to to and returns the amount moved
func (v *Vault) Drain(ctx context.Context, ledger Ledger, capability Capability, to domain.Identity) (uint64, error) {
	if !v.authorized(capability) {
		return 0, domain.ErrInvalidCapability
	}
	balance, err := v.Balance(ctx, ledger)
	if err != nil {
		return 0, err
	}
	if err := v.Release(ctx, ledger, capability, to, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Balance returns the vault's current balance
func (v *Vault) Balance(ctx context.Context, ledger Ledger) (uint64, error) {
	b, err := ledger.Balance(ctx, v.address)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextBalance, err)
	}
	return b, nil
}

func (v *Vault) authorized(c Capability) bool {
	return subtle.ConstantTimeCompare(v.digest[:], c.digest[:]) == 1
}
