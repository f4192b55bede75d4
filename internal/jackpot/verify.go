package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/randomness"
)

// DrawVerification is the audit result for one round's draw
type DrawVerification struct {
	RoundIndex  uint64          `json:"round_index"`
	Source      string          `json:"source"`
	Rand        uint64          `json:"rand"`
	Winner      domain.Identity `json:"winner"`
	WinnerIndex uint64          `json:"winner_index"`
	Verified    bool            `json:"verified"`
}

// VerifyDraw re-derives the seed of a settled round and checks the recorded
// proof with the configured provider. It also replays the weighted selection
// so a tampered winner is caught even when the signature is valid.
func (s *service) VerifyDraw(ctx context.Context, index uint64) (*DrawVerification, error) {
	round, err := s.GetRound(ctx, index)
	if err != nil {
		return nil, err
	}
	if !round.HasWinner() {
		return nil, domain.ErrWinnerUnset
	}

	verifier, ok := s.rng.(randomness.Verifier)
	if !ok || round.RandSource != s.rng.Name() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRandomnessUnverifiable, randomness.ErrNotVerifiable)
	}

	draw := randomness.Draw{Value: round.Rand, Source: round.RandSource, Proof: round.RandProof}
	if err := verifier.Verify(randomness.NewSeed(round), draw); err != nil {
		return nil, err
	}

	replay := round.Clone()
	replay.Winner = nil
	if err := replay.SelectWinner(round.Rand); err != nil {
		return nil, err
	}
	if *replay.Winner != *round.Winner || replay.WinnerIndex != round.WinnerIndex {
		return nil, fmt.Errorf("%w: recorded winner does not match the draw", domain.ErrRandomnessUnverifiable)
	}

	return &DrawVerification{
		RoundIndex:  round.Index,
		Source:      round.RandSource,
		Rand:        round.Rand,
		Winner:      *round.Winner,
		WinnerIndex: round.WinnerIndex,
		Verified:    true,
	}, nil
}
