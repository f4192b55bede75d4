package randomness

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing"
	"go.dedis.ch/kyber/v3/sign/bls"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

var suite = pairing.NewSuiteBn256()

// VRFSource signs the round seed with a BLS key and derives the value from the
// signature. BLS signatures are unique per (key, message), so the operator
// cannot choose among several valid values, and anyone holding the public key
// can check the draw with VerifyDraw.
type VRFSource struct {
	private kyber.Scalar
	public  kyber.Point
}

// NewVRFSource creates a VRFSource from a private scalar
func NewVRFSource(private kyber.Scalar) *VRFSource {
	return &VRFSource{
		private: private,
		public:  suite.G2().Point().Mul(private, nil),
	}
}

// NewVRFSourceFromHex decodes a hex private key produced by GenerateKeyPair
func NewVRFSourceFromHex(privateHex string) (*VRFSource, error) {
	raw, err := hex.DecodeString(privateHex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeKey, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: empty key", ErrContextDecodeKey)
	}
	x := suite.G2().Scalar()
	if err := x.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeKey, err)
	}
	return NewVRFSource(x), nil
}

// Name implements Provider
func (v *VRFSource) Name() string { return SourceVRF }

// PublicKey returns the verification key
func (v *VRFSource) PublicKey() kyber.Point { return v.public }

// PublicKeyHex returns the hex encoded verification key
func (v *VRFSource) PublicKeyHex() (string, error) {
	b, err := v.public.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Draw implements Provider. The proof is the BLS signature over the seed.
func (v *VRFSource) Draw(ctx context.Context, seed Seed) (Draw, error) {
	if err := ctx.Err(); err != nil {
		return Draw{}, err
	}
	sig, err := bls.Sign(suite, v.private, SeedMessage(seed))
	if err != nil {
		return Draw{}, fmt.Errorf("%s: %w", ErrContextSignSeed, err)
	}
	return Draw{
		Value:  valueFromDigest(sig),
		Source: SourceVRF,
		Proof:  sig,
	}, nil
}

// SeedMessage is the byte string signed for a seed:
// "jackpot-round" || index (u64 LE) || total (u64 LE) || deposit digest
func SeedMessage(seed Seed) []byte {
	var buf bytes.Buffer
	buf.WriteString(vrfDomainTag)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], seed.RoundIndex)
	buf.Write(n[:])
	binary.LittleEndian.PutUint64(n[:], seed.TotalAmount)
	buf.Write(n[:])
	buf.Write(seed.DepositDigest[:])
	return buf.Bytes()
}

// VerifyDraw checks that draw was produced by the holder of public for seed
func VerifyDraw(public kyber.Point, seed Seed, draw Draw) error {
	if draw.Source != SourceVRF {
		return fmt.Errorf("%w: source %q carries no signature", domain.ErrRandomnessUnverifiable, draw.Source)
	}
	if err := bls.Verify(suite, public, SeedMessage(seed), draw.Proof); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRandomnessUnverifiable, ErrContextVerifySignature, err)
	}
	if valueFromDigest(draw.Proof) != draw.Value {
		return fmt.Errorf("%w: value does not match signature", domain.ErrRandomnessUnverifiable)
	}
	return nil
}

// ParsePublicKey decodes a hex verification key
func ParsePublicKey(publicHex string) (kyber.Point, error) {
	raw, err := hex.DecodeString(publicHex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeKey, err)
	}
	p := suite.G2().Point()
	if err := p.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeKey, err)
	}
	return p, nil
}

// GenerateKeyPair returns a fresh hex encoded (private, public) key pair
func GenerateKeyPair() (string, string, error) {
	private, public := bls.NewKeyPair(suite, random.New())
	pb, err := private.MarshalBinary()
	if err != nil {
		return "", "", err
	}
	pub, err := public.MarshalBinary()
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(pb), hex.EncodeToString(pub), nil
}

// ErrNotVerifiable is returned by Verifier when the configured source has no proof
var ErrNotVerifiable = errors.New("randomness source is not verifiable")

// Verifier is implemented by providers whose draws can be checked later
type Verifier interface {
	Verify(seed Seed, draw Draw) error
}

// Verify implements Verifier using this source's public key
func (v *VRFSource) Verify(seed Seed, draw Draw) error {
	return VerifyDraw(v.public, seed, draw)
}
