package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/metrics"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call, counts it and writes the
// mapped status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	kind := domain.ErrorKind(err)
	log := logger.FromContext(r.Context())
	if kind == "internal" {
		log.Error(LogMsgServiceCallFailed, "operation", opName, "error", err)
	} else {
		log.Info(LogMsgServiceCallRejected, "operation", opName, "kind", kind, "error", err)
	}
	metrics.RecordRejection(opName, err)

	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondJSON(w, statusCode, ErrorResponse{Error: userMsg, Kind: kind})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgNotAuthorizedError  = "You are not allowed to do that"
	ErrMsgOutOfSequenceError  = "That action is not allowed at this point of the round"
	ErrMsgWinnerUnsetError    = "No winner has been selected for this round yet"

	// Jackpot messages
	ErrMsgNotAdminError             = "Only the jackpot admin can do that"
	ErrMsgNotWinnerError            = "Only the round winner can receive the reward"
	ErrMsgNotInitializedError       = "The jackpot has not been set up yet"
	ErrMsgAlreadyInitializedError   = "The jackpot is already set up"
	ErrMsgWrongRoundError           = "That is not the current round"
	ErrMsgRoundNotCompletedError    = "The previous round is still running"
	ErrMsgRoundCompletedError       = "That round is already finished"
	ErrMsgWinnerAlreadySetError     = "A winner was already drawn for this round"
	ErrMsgRoundClosedError          = "This round no longer accepts deposits"
	ErrMsgRoundExpiredError         = "This round has expired"
	ErrMsgRoundNotExpiredError      = "This round has not reached its deadline"
	ErrMsgRoundHasNoDeadlineError   = "This round has no deadline"
	ErrMsgRewardClaimedError        = "The reward was already paid out"
	ErrMsgRewardNotClaimedError     = "The reward must be paid out before the fee is swept"
	ErrMsgRoundNotFoundError        = "Round not found"
	ErrMsgInvalidAmountError        = "Amount must be greater than zero"
	ErrMsgEmptyPoolError            = "Nobody has joined this round"
	ErrMsgInvalidFeeError           = "Platform fee must be between 0 and 10000 basis points"
	ErrMsgRoundFullError            = "This round is full"
	ErrMsgAmountOverflowError       = "That amount is too large"
	ErrMsgInsufficientFundsError    = "Not enough funds"
	ErrMsgRandomnessUnverifiableErr = "This draw cannot be verified"
)

type errorMapping struct {
	err    error
	status int
	msg    string
}

// specificErrors is checked in order before falling back to the error category
var specificErrors = []errorMapping{
	{domain.ErrInvalidAuthority, http.StatusForbidden, ErrMsgNotAdminError},
	{domain.ErrNotWinner, http.StatusForbidden, ErrMsgNotWinnerError},
	{domain.ErrRoundNotFound, http.StatusNotFound, ErrMsgRoundNotFoundError},
	{domain.ErrNotInitialized, http.StatusConflict, ErrMsgNotInitializedError},
	{domain.ErrAlreadyInitialized, http.StatusConflict, ErrMsgAlreadyInitializedError},
	{domain.ErrInvalidRoundCounter, http.StatusConflict, ErrMsgWrongRoundError},
	{domain.ErrRoundNotCompleted, http.StatusConflict, ErrMsgRoundNotCompletedError},
	{domain.ErrRoundAlreadyCompleted, http.StatusConflict, ErrMsgRoundCompletedError},
	{domain.ErrWinnerAlreadySet, http.StatusConflict, ErrMsgWinnerAlreadySetError},
	{domain.ErrRoundClosed, http.StatusConflict, ErrMsgRoundClosedError},
	{domain.ErrRoundExpired, http.StatusConflict, ErrMsgRoundExpiredError},
	{domain.ErrRoundNotExpired, http.StatusConflict, ErrMsgRoundNotExpiredError},
	{domain.ErrRoundHasNoDeadline, http.StatusConflict, ErrMsgRoundHasNoDeadlineError},
	{domain.ErrRewardAlreadyClaimed, http.StatusConflict, ErrMsgRewardClaimedError},
	{domain.ErrRewardNotClaimed, http.StatusConflict, ErrMsgRewardNotClaimedError},
	{domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountError},
	{domain.ErrEmptyPool, http.StatusBadRequest, ErrMsgEmptyPoolError},
	{domain.ErrInvalidPlatformFee, http.StatusBadRequest, ErrMsgInvalidFeeError},
	{domain.ErrRoundCapacityExceeded, http.StatusBadRequest, ErrMsgRoundFullError},
	{domain.ErrAmountOverflow, http.StatusBadRequest, ErrMsgAmountOverflowError},
	{domain.ErrFeeUnderflow, http.StatusBadRequest, ErrMsgAmountOverflowError},
	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgInsufficientFundsError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrRandomnessUnverifiable, http.StatusUnprocessableEntity, ErrMsgRandomnessUnverifiableErr},
}

// mapServiceErrorToUserMessage maps service errors to HTTP status codes and user-friendly messages.
// Known sentinels get a specific message; otherwise the error category decides
// the status and anything uncategorized is a 500 with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	for _, m := range specificErrors {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}

	switch {
	case errors.Is(err, domain.ErrAuthorization):
		return http.StatusForbidden, ErrMsgNotAuthorizedError
	case errors.Is(err, domain.ErrSequencing):
		return http.StatusConflict, ErrMsgOutOfSequenceError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrWinnerUnset):
		return http.StatusConflict, ErrMsgWinnerUnsetError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
