package randomness

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// SlotHashOptions configures SlotHashSource
type SlotHashOptions struct {
	Genesis      time.Time
	SlotDuration time.Duration
	Now          func() time.Time
}

// SlotHashSource hashes the current unix timestamp with the current execution
// slot. The slot counts SlotDuration ticks since Genesis. The value is
// predictable by anyone who can observe the clock, so this source is only
// suitable when the operator is trusted.
type SlotHashSource struct {
	genesis      time.Time
	slotDuration time.Duration
	now          func() time.Time
}

// NewSlotHashSource creates a SlotHashSource, filling defaults for zero fields
func NewSlotHashSource(opts SlotHashOptions) *SlotHashSource {
	s := &SlotHashSource{
		genesis:      opts.Genesis,
		slotDuration: opts.SlotDuration,
		now:          opts.Now,
	}
	if s.slotDuration <= 0 {
		s.slotDuration = DefaultSlotDuration
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.genesis.IsZero() {
		s.genesis = time.Unix(0, 0)
	}
	return s
}

// Name implements Provider
func (s *SlotHashSource) Name() string { return SourceSlotHash }

// Slot returns the slot number at t. Times before genesis map to slot 0.
func (s *SlotHashSource) Slot(t time.Time) uint64 {
	elapsed := t.Sub(s.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / s.slotDuration)
}

// Draw implements Provider. The proof is the 16-byte hash preimage.
func (s *SlotHashSource) Draw(ctx context.Context, _ Seed) (Draw, error) {
	if err := ctx.Err(); err != nil {
		return Draw{}, err
	}
	now := s.now()
	preimage := SlotHashPreimage(now.Unix(), s.Slot(now))
	return Draw{
		Value:  valueFromDigest(preimage),
		Source: SourceSlotHash,
		Proof:  preimage,
	}, nil
}

// Verify implements Verifier. It re-hashes the recorded preimage and checks
// that its slot is one this source could have observed at its timestamp. It
// proves the value was derived honestly, not that it was unpredictable.
func (s *SlotHashSource) Verify(_ Seed, draw Draw) error {
	if draw.Source != SourceSlotHash {
		return fmt.Errorf("%w: source %q is not %s", domain.ErrRandomnessUnverifiable, draw.Source, SourceSlotHash)
	}
	if len(draw.Proof) != slotHashPreimageLen {
		return fmt.Errorf("%w: %s: preimage is %d bytes", domain.ErrRandomnessUnverifiable, ErrContextVerifySlotHash, len(draw.Proof))
	}
	if valueFromDigest(draw.Proof) != draw.Value {
		return fmt.Errorf("%w: %s: value does not match preimage", domain.ErrRandomnessUnverifiable, ErrContextVerifySlotHash)
	}

	ts := time.Unix(int64(binary.LittleEndian.Uint64(draw.Proof[:8])), 0)
	slot := binary.LittleEndian.Uint64(draw.Proof[8:])
	// Draw reads the slot from the sub-second clock, so any slot within the
	// recorded second is valid
	if slot < s.Slot(ts) || slot > s.Slot(ts.Add(time.Second-time.Nanosecond)) {
		return fmt.Errorf("%w: %s: slot %d does not match timestamp %d", domain.ErrRandomnessUnverifiable, ErrContextVerifySlotHash, slot, ts.Unix())
	}
	return nil
}

// SlotHashPreimage encodes timestamp (i64 LE) followed by slot (u64 LE)
func SlotHashPreimage(unixTimestamp int64, slot uint64) []byte {
	buf := make([]byte, slotHashPreimageLen)
	binary.LittleEndian.PutUint64(buf[:8], uint64(unixTimestamp))
	binary.LittleEndian.PutUint64(buf[8:], slot)
	return buf
}

// SlotHashValue returns the random value for a timestamp and slot
func SlotHashValue(unixTimestamp int64, slot uint64) uint64 {
	return valueFromDigest(SlotHashPreimage(unixTimestamp, slot))
}
