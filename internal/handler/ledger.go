package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
	"github.com/osse101/Jackpot_Go/internal/logger"
)

// HandleGetBalance returns the ledger balance of ?account=. Only the account
// itself or the admin may read it.
// @Summary Get balance
// @Tags ledger
// @Produce json
// @Param account query string true "Account identity"
// @Success 200 {object} BalanceResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/ledger/balance [get]
// @Security BearerAuth
func HandleGetBalance(svc jackpot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := readableAccount(svc, r, w)
		if !ok {
			return
		}
		balance, err := svc.GetBalance(r.Context(), account)
		if err != nil {
			respondServiceError(w, r, OpGetBalance, err)
			return
		}
		respondJSON(w, http.StatusOK, BalanceResponse{Account: account, Balance: balance})
	}
}

// HandleListTransfers returns recent transfers touching ?account=, newest first
// @Summary List transfers
// @Tags ledger
// @Produce json
// @Param account query string true "Account identity"
// @Param limit query int false "Max transfers"
// @Success 200 {array} domain.Transfer
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/ledger/transfers [get]
// @Security BearerAuth
func HandleListTransfers(svc jackpot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := readableAccount(svc, r, w)
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}
		transfers, err := svc.ListTransfers(r.Context(), account, limit)
		if err != nil {
			respondServiceError(w, r, OpListTransfers, err)
			return
		}
		respondJSON(w, http.StatusOK, transfers)
	}
}

// readableAccount resolves ?account= and checks the caller owns it or is the
// configured admin. Before initialization only the owner passes.
func readableAccount(svc jackpot.Service, r *http.Request, w http.ResponseWriter) (domain.Identity, bool) {
	caller, ok := RequireCaller(r, w)
	if !ok {
		return "", false
	}
	raw, ok := GetQueryParam(r, w, ParamAccount)
	if !ok {
		return "", false
	}
	account := domain.Identity(raw)
	if caller == account {
		return account, true
	}

	cfg, err := svc.GetConfig(r.Context())
	switch {
	case err == nil && cfg.Admin == caller:
		return account, true
	case err != nil && !errors.Is(err, domain.ErrNotInitialized):
		respondServiceError(w, r, OpGetConfig, err)
		return "", false
	}

	logger.FromContext(r.Context()).Warn(LogMsgLedgerReadDenied, "caller", caller, "account", account)
	respondError(w, http.StatusForbidden, ErrMsgLedgerNotOwner)
	return "", false
}
