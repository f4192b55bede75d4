package domain

import (
	"math/bits"
)

// BasisPointsDenominator is the basis point value that represents 100%
const BasisPointsDenominator = 10_000

// Payout is the split of a pool between the winner and the treasury
type Payout struct {
	Total  uint64 `json:"total"`
	Fee    uint64 `json:"fee"`
	Reward uint64 `json:"reward"`
}

// ComputePayout returns fee = total * feeBps / 10000 (rounded down) and
// reward = total - fee. The product is computed in 128 bits so large pools
// cannot overflow.
func ComputePayout(total uint64, feeBps uint16) (Payout, error) {
	if total == 0 {
		return Payout{}, ErrEmptyPool
	}
	if feeBps > BasisPointsDenominator {
		return Payout{}, ErrInvalidPlatformFee
	}

	hi, lo := bits.Mul64(total, uint64(feeBps))
	fee, _ := bits.Div64(hi, lo, BasisPointsDenominator)

	reward, borrow := bits.Sub64(total, fee, 0)
	if borrow != 0 {
		return Payout{}, ErrFeeUnderflow
	}

	return Payout{Total: total, Fee: fee, Reward: reward}, nil
}
