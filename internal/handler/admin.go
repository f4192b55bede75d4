package handler

import (
	"net/http"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
	"github.com/osse101/Jackpot_Go/internal/logger"
)

// CreditRequest mints funds into a ledger account
type CreditRequest struct {
	Account domain.Identity `json:"account" validate:"required,identity"`
	Amount  uint64          `json:"amount" validate:"gt=0"`
}

// BalanceResponse reports one ledger account
type BalanceResponse struct {
	Account domain.Identity `json:"account"`
	Balance uint64          `json:"balance"`
}

// HandleInitialize creates the jackpot config (one time)
// @Summary Initialize jackpot
// @Description Creates the global config. The caller must name itself as admin.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.ConfigInput true "Config"
// @Success 201 {object} domain.Config
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/initialize [post]
// @Security BearerAuth
func HandleInitialize(svc jackpot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := RequireCaller(r, w)
		if !ok {
			return
		}
		var req domain.ConfigInput
		if err := DecodeAndValidateRequest(r, w, &req, "Initialize"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		if caller != req.Admin {
			log.Warn(LogMsgInitializeRejected, "caller", caller, "admin", req.Admin)
			respondError(w, http.StatusForbidden, ErrMsgInitializeNotSelf)
			return
		}

		cfg, err := svc.Initialize(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, OpInitialize, err)
			return
		}

		log.Info(LogMsgInitializedOverHTTP, "admin", cfg.Admin, "platform_fee", cfg.PlatformFee)
		respondJSON(w, http.StatusCreated, cfg)
	}
}

// HandleCredit mints funds into an account (admin only)
// @Summary Credit ledger account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreditRequest true "Credit"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/ledger/credit [post]
// @Security BearerAuth
func HandleCredit(svc jackpot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := RequireCaller(r, w)
		if !ok {
			return
		}
		var req CreditRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Credit account"); err != nil {
			return
		}

		balance, err := svc.Credit(r.Context(), caller, req.Account, req.Amount)
		if err != nil {
			respondServiceError(w, r, OpCredit, err)
			return
		}
		respondJSON(w, http.StatusOK, BalanceResponse{Account: req.Account, Balance: balance})
	}
}
