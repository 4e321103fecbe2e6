package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// HistoryGetter lists the transactions shown on the history screen.
type HistoryGetter interface {
	History(ctx context.Context, id uuid.UUID) (*models.HistoryResponse, error)
}

// NewHistoryHandler returns an HTTP handler for the history screen.
// @Summary Transaction history
// @Description Transactions with their display amounts. A failed fetch returns an empty list and an error notification
// @Tags history
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.HistoryResponse
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Not on the history screen"
// @Router /sessions/{id}/history [get]
func NewHistoryHandler(svc HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		resp, err := svc.History(r.Context(), id)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
