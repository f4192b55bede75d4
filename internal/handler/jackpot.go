package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
	"github.com/osse101/Jackpot_Go/internal/logger"
)

// JackpotHandler serves the round lifecycle endpoints
type JackpotHandler struct {
	service jackpot.Service
}

func NewJackpotHandler(service jackpot.Service) *JackpotHandler {
	return &JackpotHandler{service: service}
}

// ConfigResponse is the jackpot config plus the vault account
type ConfigResponse struct {
	*domain.Config
	VaultAddress domain.Identity `json:"vault_address"`
}

type CreateRoundRequest struct {
	RoundIndex uint64 `json:"round_index" validate:"required"`
}

type JoinRoundRequest struct {
	Amount uint64 `json:"amount" validate:"gt=0"`
}

type ClaimRewardRequest struct {
	Winner domain.Identity `json:"winner" validate:"required,identity"`
}

// HandleGetConfig returns the jackpot configuration
// @Summary Get jackpot config
// @Tags jackpot
// @Produce json
// @Success 200 {object} ConfigResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/config [get]
func (h *JackpotHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetConfig, err)
		return
	}
	respondJSON(w, http.StatusOK, ConfigResponse{Config: cfg, VaultAddress: h.service.VaultAddress()})
}

// HandleGetCurrentRound returns the round the counter points at
// @Summary Get current round
// @Tags jackpot
// @Produce json
// @Success 200 {object} domain.GameRound
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/current [get]
func (h *JackpotHandler) HandleGetCurrentRound(w http.ResponseWriter, r *http.Request) {
	round, err := h.service.GetCurrentRound(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetRound, err)
		return
	}
	respondJSON(w, http.StatusOK, round)
}

// HandleGetRound returns one round by index
// @Summary Get round
// @Tags jackpot
// @Produce json
// @Param round path int true "Round index"
// @Success 200 {object} domain.GameRound
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round} [get]
func (h *JackpotHandler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	index, ok := GetRoundParam(r, w)
	if !ok {
		return
	}
	round, err := h.service.GetRound(r.Context(), index)
	if err != nil {
		respondServiceError(w, r, OpGetRound, err)
		return
	}
	respondJSON(w, http.StatusOK, round)
}

// HandleListRounds returns the most recent rounds
// @Summary List rounds
// @Tags jackpot
// @Produce json
// @Param limit query int false "Max rounds"
// @Success 200 {array} domain.GameRound
// @Router /api/v1/jackpot/rounds [get]
func (h *JackpotHandler) HandleListRounds(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}
	rounds, err := h.service.ListRounds(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, OpListRounds, err)
		return
	}
	respondJSON(w, http.StatusOK, rounds)
}

// HandleCreateRound opens the next round
// @Summary Create round
// @Description Admin only. round_index must be the current counter plus one.
// @Tags jackpot
// @Accept json
// @Produce json
// @Param request body CreateRoundRequest true "Round index"
// @Success 201 {object} domain.GameRound
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds [post]
func (h *JackpotHandler) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(r, w)
	if !ok {
		return
	}
	var req CreateRoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create round"); err != nil {
		return
	}

	round, err := h.service.CreateRound(r.Context(), caller, req.RoundIndex)
	if err != nil {
		respondServiceError(w, r, OpCreateRound, err)
		return
	}
	respondJSON(w, http.StatusCreated, round)
}

// HandleJoinRound deposits the caller's funds into a round
// @Summary Join round
// @Tags jackpot
// @Accept json
// @Produce json
// @Param round path int true "Round index"
// @Param request body JoinRoundRequest true "Deposit"
// @Success 200 {object} domain.GameRound
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round}/join [post]
func (h *JackpotHandler) HandleJoinRound(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(r, w)
	if !ok {
		return
	}
	index, ok := GetRoundParam(r, w)
	if !ok {
		return
	}
	var req JoinRoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Join round"); err != nil {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "round", index, "depositor", caller, "amount", req.Amount)

	round, err := h.service.JoinRound(r.Context(), caller, index, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpJoinRound, err)
		return
	}
	respondJSON(w, http.StatusOK, round)
}

// HandleSelectWinner draws the round winner
// @Summary Select winner
// @Tags jackpot
// @Produce json
// @Param round path int true "Round index"
// @Success 200 {object} domain.GameRound
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round}/select-winner [post]
func (h *JackpotHandler) HandleSelectWinner(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, OpSelectWinner, h.service.SelectWinner)
}

// HandleClaimReward pays the winner
// @Summary Claim reward
// @Description Admin only. winner must be the recorded winner of the round.
// @Tags jackpot
// @Accept json
// @Produce json
// @Param round path int true "Round index"
// @Param request body ClaimRewardRequest true "Claimant"
// @Success 200 {object} domain.Payout
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round}/claim [post]
func (h *JackpotHandler) HandleClaimReward(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(r, w)
	if !ok {
		return
	}
	index, ok := GetRoundParam(r, w)
	if !ok {
		return
	}
	var req ClaimRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim reward"); err != nil {
		return
	}

	payout, err := h.service.ClaimReward(r.Context(), caller, index, req.Winner)
	if err != nil {
		respondServiceError(w, r, OpClaimReward, err)
		return
	}
	respondJSON(w, http.StatusOK, payout)
}

// HandleSweepFee sends the remaining vault balance to the treasury and completes the round
// @Summary Sweep fee
// @Tags jackpot
// @Produce json
// @Param round path int true "Round index"
// @Success 200 {object} domain.GameRound
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round}/sweep [post]
func (h *JackpotHandler) HandleSweepFee(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, OpSweepFee, h.service.SweepFee)
}

// HandleExpireRound flags a round whose deadline has passed
// @Summary Expire round
// @Tags jackpot
// @Produce json
// @Param round path int true "Round index"
// @Success 200 {object} domain.GameRound
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round}/expire [post]
func (h *JackpotHandler) HandleExpireRound(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, OpExpireRound, h.service.ExpireRound)
}

// HandleVerifyDraw checks the recorded randomness proof of a round
// @Summary Verify draw
// @Tags jackpot
// @Produce json
// @Param round path int true "Round index"
// @Success 200 {object} jackpot.DrawVerification
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/jackpot/rounds/{round}/verify [get]
func (h *JackpotHandler) HandleVerifyDraw(w http.ResponseWriter, r *http.Request) {
	index, ok := GetRoundParam(r, w)
	if !ok {
		return
	}
	result, err := h.service.VerifyDraw(r.Context(), index)
	if err != nil {
		respondServiceError(w, r, OpVerifyDraw, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type roundFunc func(ctx context.Context, caller domain.Identity, index uint64) (*domain.GameRound, error)

// roundAction runs an admin operation that takes only the round index
func (h *JackpotHandler) roundAction(w http.ResponseWriter, r *http.Request, opName string, fn roundFunc) {
	caller, ok := RequireCaller(r, w)
	if !ok {
		return
	}
	index, ok := GetRoundParam(r, w)
	if !ok {
		return
	}

	round, err := fn(r.Context(), caller, index)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, round)
}
