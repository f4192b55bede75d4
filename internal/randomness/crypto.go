package randomness

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// CryptoSource draws from the operating system CSPRNG. Draws are not
// reproducible, so no proof is attached.
type CryptoSource struct{}

// NewCryptoSource creates a CryptoSource
func NewCryptoSource() *CryptoSource { return &CryptoSource{} }

// Name implements Provider
func (c *CryptoSource) Name() string { return SourceCrypto }

// Draw implements Provider
func (c *CryptoSource) Draw(ctx context.Context, _ Seed) (Draw, error) {
	if err := ctx.Err(); err != nil {
		return Draw{}, err
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Draw{}, fmt.Errorf("%s: %w", ErrContextReadEntropy, err)
	}
	return Draw{Value: binary.LittleEndian.Uint64(buf[:]), Source: SourceCrypto}, nil
}
