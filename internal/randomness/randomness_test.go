package randomness

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

func TestSlotHashValue_MatchesDefinition(t *testing.T) {
	ts := int64(1_700_000_123)
	slot := uint64(987654)

	var preimage [16]byte
	binary.LittleEndian.PutUint64(preimage[:8], uint64(ts))
	binary.LittleEndian.PutUint64(preimage[8:], slot)
	sum := sha256.Sum256(preimage[:])
	want := binary.LittleEndian.Uint64(sum[:8])

	assert.Equal(t, want, SlotHashValue(ts, slot))
}

func TestSlotHashSource_Draw(t *testing.T) {
	genesis := time.Unix(1_700_000_000, 0)
	now := genesis.Add(10 * time.Second)
	src := NewSlotHashSource(SlotHashOptions{
		Genesis: genesis,
		Now:     func() time.Time { return now },
	})

	assert.Equal(t, uint64(25), src.Slot(now))
	assert.Equal(t, uint64(0), src.Slot(genesis.Add(-time.Hour)))

	d, err := src.Draw(context.Background(), Seed{})
	require.NoError(t, err)
	assert.Equal(t, SourceSlotHash, d.Source)
	assert.Equal(t, SlotHashValue(now.Unix(), 25), d.Value)
	assert.Equal(t, SlotHashPreimage(now.Unix(), 25), d.Proof)
}

func TestSlotHashSource_Verify(t *testing.T) {
	genesis := time.Unix(1_700_000_000, 0)
	now := genesis.Add(10*time.Second + 900*time.Millisecond)
	src := NewSlotHashSource(SlotHashOptions{
		Genesis: genesis,
		Now:     func() time.Time { return now },
	})

	d, err := src.Draw(context.Background(), Seed{})
	require.NoError(t, err)
	require.Equal(t, uint64(27), src.Slot(now))
	require.NoError(t, src.Verify(Seed{}, d))

	var _ Verifier = src

	tests := []struct {
		name string
		draw Draw
	}{
		{"wrong source", Draw{Value: d.Value, Source: SourceCrypto, Proof: d.Proof}},
		{"short proof", Draw{Value: d.Value, Source: SourceSlotHash, Proof: d.Proof[:8]}},
		{"value not from preimage", Draw{Value: d.Value + 1, Source: SourceSlotHash, Proof: d.Proof}},
		{"slot outside timestamp", Draw{
			Value:  SlotHashValue(now.Unix(), 40),
			Source: SourceSlotHash,
			Proof:  SlotHashPreimage(now.Unix(), 40),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := src.Verify(Seed{}, tt.draw)
			assert.ErrorIs(t, err, domain.ErrRandomnessUnverifiable)
		})
	}
}

func TestCryptoSource_Draw(t *testing.T) {
	src := NewCryptoSource()
	a, err := src.Draw(context.Background(), Seed{})
	require.NoError(t, err)
	b, err := src.Draw(context.Background(), Seed{})
	require.NoError(t, err)

	assert.Equal(t, SourceCrypto, a.Source)
	assert.NotEqual(t, a.Value, b.Value)
}

func TestFixed_Draw(t *testing.T) {
	f := NewFixed(45, 7)
	ctx := context.Background()

	d1, _ := f.Draw(ctx, Seed{RoundIndex: 1})
	d2, _ := f.Draw(ctx, Seed{RoundIndex: 2})
	d3, _ := f.Draw(ctx, Seed{RoundIndex: 3})

	assert.Equal(t, []uint64{45, 7, 7}, []uint64{d1.Value, d2.Value, d3.Value})
	assert.Len(t, f.Seeds(), 3)
}

func TestDraw_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFixed(1).Draw(ctx, Seed{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDigestDeposits_OrderSensitive(t *testing.T) {
	a := []domain.Deposit{{Depositor: "A", Amount: 30}, {Depositor: "B", Amount: 70}}
	b := []domain.Deposit{{Depositor: "B", Amount: 70}, {Depositor: "A", Amount: 30}}

	assert.Equal(t, DigestDeposits(a), DigestDeposits(a))
	assert.NotEqual(t, DigestDeposits(a), DigestDeposits(b))
}

func TestVRFSource_DrawAndVerify(t *testing.T) {
	privHex, pubHex, err := GenerateKeyPair()
	require.NoError(t, err)

	src, err := NewVRFSourceFromHex(privHex)
	require.NoError(t, err)
	gotPub, err := src.PublicKeyHex()
	require.NoError(t, err)
	assert.Equal(t, pubHex, gotPub)

	seed := Seed{RoundIndex: 4, TotalAmount: 100, DepositDigest: DigestDeposits([]domain.Deposit{{Depositor: "A", Amount: 100}})}
	d1, err := src.Draw(context.Background(), seed)
	require.NoError(t, err)
	d2, err := src.Draw(context.Background(), seed)
	require.NoError(t, err)

	assert.Equal(t, d1.Value, d2.Value, "BLS draws are unique per seed")

	pub, err := ParsePublicKey(pubHex)
	require.NoError(t, err)
	require.NoError(t, VerifyDraw(pub, seed, d1))

	t.Run("tampered value", func(t *testing.T) {
		bad := d1
		bad.Value++
		assert.ErrorIs(t, VerifyDraw(pub, seed, bad), domain.ErrRandomnessUnverifiable)
	})

	t.Run("different seed", func(t *testing.T) {
		other := seed
		other.TotalAmount = 101
		assert.ErrorIs(t, VerifyDraw(pub, other, d1), domain.ErrRandomnessUnverifiable)
	})

	t.Run("non vrf draw", func(t *testing.T) {
		assert.ErrorIs(t, VerifyDraw(pub, seed, Draw{Source: SourceCrypto}), domain.ErrRandomnessUnverifiable)
	})
}

func TestNew(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceSlotHash, p.Name())

	p, err = New(Options{Source: SourceCrypto})
	require.NoError(t, err)
	assert.Equal(t, SourceCrypto, p.Name())

	_, err = New(Options{Source: SourceVRF, VRFPrivateKey: "zz"})
	assert.Error(t, err)

	_, err = New(Options{Source: "dice"})
	assert.Error(t, err)
}
