package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// AdminViewSelector switches the admin sub-view.
type AdminViewSelector interface {
	AdminSelectView(ctx context.Context, id uuid.UUID, view models.AdminView) (*models.SessionView, error)
}

// AdminEditor starts an edit session.
type AdminEditor interface {
	AdminEdit(ctx context.Context, id uuid.UUID, recordID int64) (*models.SessionView, error)
}

// AdminCanceler leaves the edit session.
type AdminCanceler interface {
	AdminCancel(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
}

// AdminFormSetter stores typed form values.
type AdminFormSetter interface {
	AdminSetForm(ctx context.Context, id uuid.UUID, form models.PaymentDetailForm) (*models.SessionView, error)
}

// AdminSaver submits the form.
type AdminSaver interface {
	AdminSave(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
}

// AdminDeleter deletes a payment detail.
type AdminDeleter interface {
	AdminDelete(ctx context.Context, id uuid.UUID, recordID int64, confirmed bool) (*models.SessionView, error)
}

// RelayFailureLister lists journaled relay failures.
type RelayFailureLister interface {
	RecentFailures(ctx context.Context, limit int) ([]models.RelayFailure, error)
}

// NewAdminViewHandler returns an HTTP handler that switches the admin sub-view.
// @Summary Select admin view
// @Description Switch between payment-details and transactions and refresh the list
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AdminViewRequest true "Sub-view"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Not on the admin screen"
// @Router /sessions/{id}/admin/view [post]
func NewAdminViewHandler(svc AdminViewSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var req models.AdminViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := svc.AdminSelectView(r.Context(), id, req.View)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewAdminEditHandler returns an HTTP handler that starts editing a payment detail.
// @Summary Edit payment detail
// @Description Fill the form from the record and make it the edit target
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AdminRecordRequest true "Record"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Not on the admin screen"
// @Router /sessions/{id}/admin/edit [post]
func NewAdminEditHandler(svc AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var req models.AdminRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := svc.AdminEdit(r.Context(), id, req.ID)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewAdminCancelHandler returns an HTTP handler that leaves the edit session.
// @Summary Cancel edit
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionView
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Not on the admin screen"
// @Router /sessions/{id}/admin/cancel [post]
func NewAdminCancelHandler(svc AdminCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		view, err := svc.AdminCancel(r.Context(), id)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewAdminFormHandler returns an HTTP handler that stores the form values.
// @Summary Set form
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.PaymentDetailForm true "Form values"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Not on the admin screen"
// @Router /sessions/{id}/admin/form [post]
func NewAdminFormHandler(svc AdminFormSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var form models.PaymentDetailForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := svc.AdminSetForm(r.Context(), id, form)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewAdminSaveHandler returns an HTTP handler that submits the form.
// @Summary Save payment detail
// @Description Create a record, or update the one being edited. Empty fields come back as an error notification
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionView
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Not on the admin screen"
// @Router /sessions/{id}/admin/save [post]
func NewAdminSaveHandler(svc AdminSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		view, err := svc.AdminSave(r.Context(), id)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewAdminDeleteHandler returns an HTTP handler that deletes a payment detail.
// @Summary Delete payment detail
// @Description Nothing happens unless confirmed is true
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AdminDeleteRequest true "Record and confirmation"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Not on the admin screen"
// @Router /sessions/{id}/admin/delete [post]
func NewAdminDeleteHandler(svc AdminDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var req models.AdminDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := svc.AdminDelete(r.Context(), id, req.ID, req.Confirmed)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

const defaultFailuresLimit = 50

// NewRelayFailuresHandler returns an HTTP handler listing failed relay deliveries.
// @Summary Relay failures
// @Description Most recent images that could not be forwarded to operators
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {object} models.RelayFailuresResponse
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/relay-failures [get]
func NewRelayFailuresHandler(svc RelayFailureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultFailuresLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = v
		}

		failures, err := svc.RecentFailures(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.RelayFailuresResponse{Failures: failures})
	}
}
