package handlers

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers
//go:generate mockgen -source=topup.go -destination=topup_mock.go -package=handlers
//go:generate mockgen -source=history.go -destination=history_mock.go -package=handlers
//go:generate mockgen -source=help.go -destination=help_mock.go -package=handlers
//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers
//go:generate mockgen -source=admin_login.go -destination=admin_login_mock.go -package=handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
)

// maxUploadSize bounds multipart image uploads.
const maxUploadSize = 10 << 20

var errInvalidSessionID = errors.New("invalid session id")

func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errInvalidSessionID
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeSessionError maps flow errors to HTTP statuses.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidSessionID):
		writeError(w, http.StatusBadRequest, "Invalid session id")
	case errors.Is(err, services.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, services.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
