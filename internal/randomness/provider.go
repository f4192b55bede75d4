package randomness

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// Seed is the round state a draw is bound to
type Seed struct {
	RoundIndex    uint64
	TotalAmount   uint64
	DepositDigest [32]byte
}

// Draw is one random value together with the material needed to audit it
type Draw struct {
	Value  uint64
	Source string
	Proof  []byte
}

// Provider produces the random value used to pick a round winner
type Provider interface {
	Draw(ctx context.Context, seed Seed) (Draw, error)
	Name() string
}

// NewSeed builds the seed for a round from its current ledger
func NewSeed(round *domain.GameRound) Seed {
	return Seed{
		RoundIndex:    round.Index,
		TotalAmount:   round.TotalAmount,
		DepositDigest: DigestDeposits(round.Deposits),
	}
}

// DigestDeposits hashes the ordered deposit list. Each entry is encoded as
// len(depositor) as u32 LE, the depositor bytes, then the amount as u64 LE.
func DigestDeposits(deposits []domain.Deposit) [32]byte {
	h := sha256.New()
	var buf [8]byte
	for _, d := range deposits {
		binary.LittleEndian.PutUint32(buf[:4], uint32(len(d.Depositor)))
		h.Write(buf[:4])
		h.Write([]byte(d.Depositor))
		binary.LittleEndian.PutUint64(buf[:], d.Amount)
		h.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// valueFromDigest reads the first 8 bytes of sha256(b) as a little-endian u64
func valueFromDigest(b []byte) uint64 {
	sum := sha256.Sum256(b)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Options selects and configures a provider in New
type Options struct {
	Source        string
	VRFPrivateKey string
	SlotHash      SlotHashOptions
}

// New returns the provider named by opts.Source
func New(opts Options) (Provider, error) {
	switch opts.Source {
	case SourceSlotHash, "":
		return NewSlotHashSource(opts.SlotHash), nil
	case SourceCrypto:
		return NewCryptoSource(), nil
	case SourceVRF:
		return NewVRFSourceFromHex(opts.VRFPrivateKey)
	default:
		return nil, fmt.Errorf("%s: %q", ErrContextUnknownSource, opts.Source)
	}
}
