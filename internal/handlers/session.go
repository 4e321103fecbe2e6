package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// SessionCreator starts sessions.
type SessionCreator interface {
	Create(ctx context.Context, admin bool) (*models.SessionView, error)
}

// SessionViewer returns the current session view.
type SessionViewer interface {
	View(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
}

// SessionEnder ends sessions.
type SessionEnder interface {
	End(ctx context.Context, id uuid.UUID) error
}

// Navigator switches screens.
type Navigator interface {
	Navigate(ctx context.Context, id uuid.UUID, screen models.Screen) (*models.SessionView, error)
}

// NewCreateSessionHandler returns an HTTP handler that starts a session.
// @Summary Start a session
// @Description Start a top-up session on the main screen, or on the admin screen with admin=true
// @Tags sessions
// @Produce json
// @Param admin query bool false "Open the admin panel"
// @Success 201 {object} models.SessionView
// @Security BearerAuth
// @Failure 400 {object} models.ErrorResponse "Invalid admin flag"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /sessions [post]
func NewCreateSessionHandler(svc SessionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := false
		if raw := r.URL.Query().Get("admin"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid admin flag")
				return
			}
			admin = v
		}
		if admin && !middlewares.IsAdmin(r.Context()) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		view, err := svc.Create(r.Context(), admin)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, view)
	}
}

// NewGetSessionHandler returns an HTTP handler that renders a session.
// @Summary Get session
// @Description Current screen, step and pending notifications
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Invalid session id"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func NewGetSessionHandler(svc SessionViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		view, err := svc.View(r.Context(), id)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewNavigateHandler returns an HTTP handler that switches screens.
// @Summary Navigate
// @Description Switch to another screen. Main is reachable from everywhere, other screens only from main
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.NavigateRequest true "Target screen"
// @Success 200 {object} models.SessionView
// @Security BearerAuth
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Transition not allowed"
// @Router /sessions/{id}/navigate [post]
func NewNavigateHandler(svc Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var req models.NavigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Screen == models.ScreenAdmin && !middlewares.IsAdmin(r.Context()) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		view, err := svc.Navigate(r.Context(), id, req.Screen)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewEndSessionHandler returns an HTTP handler that ends a session.
// @Summary End session
// @Description Stop any running poll and drop the stored session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse "Invalid session id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /sessions/{id} [delete]
func NewEndSessionHandler(svc SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		if err := svc.End(r.Context(), id); err != nil {
			writeSessionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
