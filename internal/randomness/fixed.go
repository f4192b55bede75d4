package randomness

import (
	"context"
	"sync"
)

// Fixed returns preset values in order, repeating the last one. It is used by
// tests and simulations that need a known winner.
type Fixed struct {
	mu     sync.Mutex
	values []uint64
	next   int
	seeds  []Seed
}

// NewFixed creates a Fixed provider. With no values it always returns 0.
func NewFixed(values ...uint64) *Fixed {
	return &Fixed{values: values}
}

// Name implements Provider
func (f *Fixed) Name() string { return SourceFixed }

// Draw implements Provider
func (f *Fixed) Draw(ctx context.Context, seed Seed) (Draw, error) {
	if err := ctx.Err(); err != nil {
		return Draw{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seeds = append(f.seeds, seed)
	var v uint64
	if len(f.values) > 0 {
		i := f.next
		if i >= len(f.values) {
			i = len(f.values) - 1
		} else {
			f.next++
		}
		v = f.values[i]
	}
	return Draw{Value: v, Source: SourceFixed}, nil
}

// Seeds returns the seeds passed to Draw so far
func (f *Fixed) Seeds() []Seed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Seed(nil), f.seeds...)
}
