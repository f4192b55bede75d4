package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Categories
	ErrMsgAuthorization = "authorization error"
	ErrMsgSequencing    = "sequencing error"
	ErrMsgValidation    = "validation error"
	ErrMsgWinnerUnset   = "winner not set"

	// Authorization errors
	ErrMsgInvalidAuthority = "caller is not the administrator"
	ErrMsgNotWinner        = "claimant is not the recorded winner"

	// Sequencing errors
	ErrMsgNotInitialized         = "jackpot is not initialized"
	ErrMsgAlreadyInitialized     = "jackpot is already initialized"
	ErrMsgInvalidRoundCounter    = "round index does not match the current round"
	ErrMsgRoundNotCompleted      = "previous round is not completed"
	ErrMsgRoundAlreadyCompleted  = "round is already completed"
	ErrMsgWinnerAlreadySet       = "winner is already selected"
	ErrMsgRoundClosed            = "round is not accepting deposits"
	ErrMsgRoundExpired           = "round deadline has passed"
	ErrMsgRoundNotExpired        = "round deadline has not passed"
	ErrMsgRewardAlreadyClaimed   = "reward is already claimed"
	ErrMsgRewardNotClaimed       = "reward must be claimed before the fee is swept"
	ErrMsgRoundNotFound          = "round not found"
	ErrMsgRoundHasNoDeadline     = "round has no deadline"

	// Validation errors
	ErrMsgInvalidAmount           = "amount must be greater than zero"
	ErrMsgEmptyPool               = "round has no deposits"
	ErrMsgFeeUnderflow            = "fee exceeds pool total"
	ErrMsgInvalidPlatformFee      = "platform fee must be between 0 and 10000 basis points"
	ErrMsgRoundCapacityExceeded   = "round deposit capacity exceeded"
	ErrMsgAmountOverflow          = "amount overflows the pool total"
	ErrMsgInsufficientFunds       = "insufficient funds"
	ErrMsgInvalidInput            = "invalid input"
	ErrMsgInvalidCapability       = "vault capability does not match"
	ErrMsgLedgerInconsistent      = "round ledger is inconsistent"
	ErrMsgRandomnessUnverifiable  = "randomness proof does not verify"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Error categories. Every lifecycle error wraps exactly one of these so
// callers can branch with errors.Is(err, domain.ErrSequencing).
var (
	ErrAuthorization = errors.New(ErrMsgAuthorization)
	ErrSequencing    = errors.New(ErrMsgSequencing)
	ErrValidation    = errors.New(ErrMsgValidation)
	ErrWinnerUnset   = errors.New(ErrMsgWinnerUnset)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Authorization errors
	ErrInvalidAuthority = categorized(ErrAuthorization, ErrMsgInvalidAuthority)
	ErrNotWinner        = categorized(ErrAuthorization, ErrMsgNotWinner)

	// Sequencing errors
	ErrNotInitialized        = categorized(ErrSequencing, ErrMsgNotInitialized)
	ErrAlreadyInitialized    = categorized(ErrSequencing, ErrMsgAlreadyInitialized)
	ErrInvalidRoundCounter   = categorized(ErrSequencing, ErrMsgInvalidRoundCounter)
	ErrRoundNotCompleted     = categorized(ErrSequencing, ErrMsgRoundNotCompleted)
	ErrRoundAlreadyCompleted = categorized(ErrSequencing, ErrMsgRoundAlreadyCompleted)
	ErrWinnerAlreadySet      = categorized(ErrSequencing, ErrMsgWinnerAlreadySet)
	ErrRoundClosed           = categorized(ErrSequencing, ErrMsgRoundClosed)
	ErrRoundExpired          = categorized(ErrSequencing, ErrMsgRoundExpired)
	ErrRoundNotExpired       = categorized(ErrSequencing, ErrMsgRoundNotExpired)
	ErrRewardAlreadyClaimed  = categorized(ErrSequencing, ErrMsgRewardAlreadyClaimed)
	ErrRewardNotClaimed      = categorized(ErrSequencing, ErrMsgRewardNotClaimed)
	ErrRoundNotFound         = categorized(ErrSequencing, ErrMsgRoundNotFound)
	ErrRoundHasNoDeadline    = categorized(ErrSequencing, ErrMsgRoundHasNoDeadline)

	// Validation errors
	ErrInvalidAmount         = categorized(ErrValidation, ErrMsgInvalidAmount)
	ErrEmptyPool             = categorized(ErrValidation, ErrMsgEmptyPool)
	ErrFeeUnderflow          = categorized(ErrValidation, ErrMsgFeeUnderflow)
	ErrInvalidPlatformFee    = categorized(ErrValidation, ErrMsgInvalidPlatformFee)
	ErrRoundCapacityExceeded = categorized(ErrValidation, ErrMsgRoundCapacityExceeded)
	ErrAmountOverflow        = categorized(ErrValidation, ErrMsgAmountOverflow)
	ErrInsufficientFunds     = categorized(ErrValidation, ErrMsgInsufficientFunds)
	ErrInvalidInput          = categorized(ErrValidation, ErrMsgInvalidInput)

	// Internal faults. These are not caller mistakes and carry no category.
	ErrInvalidCapability      = errors.New(ErrMsgInvalidCapability)
	ErrLedgerInconsistent     = errors.New(ErrMsgLedgerInconsistent)
	ErrRandomnessUnverifiable = errors.New(ErrMsgRandomnessUnverifiable)

	// Transaction errors
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

func categorized(category error, msg string) error {
	return fmt.Errorf("%w: %s", category, msg)
}

// ErrorKind returns the category name of a lifecycle error, or "internal"
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthorization):
		return "authorization"
	case errors.Is(err, ErrSequencing):
		return "sequencing"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrWinnerUnset):
		return "winner_unset"
	default:
		return "internal"
	}
}
