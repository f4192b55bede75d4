package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/Jackpot_Go/internal/eventlog"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// HandleListEvents returns journaled round events oldest first
// @Summary List journaled events
// @Description Round lifecycle history. Filters combine; all are optional.
// @Tags jackpot
// @Produce json
// @Param round query int false "Round index"
// @Param event_type query string false "Event type, e.g. round.winner_selected"
// @Param since query string false "RFC3339 lower bound on created_at"
// @Param limit query int false "Max entries"
// @Success 200 {array} repository.EventLogEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/jackpot/events [get]
func HandleListEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}
		filter := repository.EventLogFilter{Limit: limit}

		query := r.URL.Query()
		if raw := query.Get(ParamRound); raw != "" {
			round, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRoundIndex)
				return
			}
			filter.RoundIndex = &round
		}

		if eventType := query.Get(ParamEventType); eventType != "" {
			filter.EventType = &eventType
		}

		if raw := query.Get(ParamSince); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		events, err := svc.GetEvents(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, OpListEvents, err)
			return
		}
		respondJSON(w, http.StatusOK, events)
	}
}
