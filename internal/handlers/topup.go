package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// AmountSubmitter handles the amount step.
type AmountSubmitter interface {
	SubmitAmount(ctx context.Context, id uuid.UUID, amount string, currency models.Currency) (*models.SessionView, error)
}

// QRUploader handles the QR-code step.
type QRUploader interface {
	UploadQR(ctx context.Context, id uuid.UUID, image []byte) (*models.SessionView, error)
}

// PaymentConfirmer handles the "I paid" action.
type PaymentConfirmer interface {
	ConfirmPaid(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
}

// ProofUploader handles the payment proof step.
type ProofUploader interface {
	UploadProof(ctx context.Context, id uuid.UUID, image []byte) (*models.SessionView, error)
}

// NewAmountHandler returns an HTTP handler for the amount step.
// @Summary Submit amount
// @Description Validate the amount and advance to the QR step. Invalid amounts come back as an error notification
// @Tags topup
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AmountRequest true "Amount and currency"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Not on the amount step"
// @Router /sessions/{id}/amount [post]
func NewAmountHandler(svc AmountSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var req models.AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := svc.SubmitAmount(r.Context(), id, req.Amount, req.Currency)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewQRUploadHandler returns an HTTP handler for the QR-code upload.
// @Summary Upload QR code
// @Description Create the transaction and forward the QR code to operators
// @Tags topup
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param image formData file true "QR-code image"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Missing image"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Not on the QR step"
// @Router /sessions/{id}/qr [post]
func NewQRUploadHandler(svc QRUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		image, ok := readImage(w, r)
		if !ok {
			return
		}

		view, err := svc.UploadQR(r.Context(), id, image)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewPaidHandler returns an HTTP handler for the "I paid" action.
// @Summary Confirm payment
// @Description Move from the payment details to the proof upload
// @Tags topup
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionView
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Not on the details step"
// @Router /sessions/{id}/paid [post]
func NewPaidHandler(svc PaymentConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		view, err := svc.ConfirmPaid(r.Context(), id)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewProofUploadHandler returns an HTTP handler for the payment proof upload.
// @Summary Upload payment proof
// @Description Forward the proof to operators and wait for the payment to be confirmed
// @Tags topup
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param image formData file true "Payment screenshot"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} models.ErrorResponse "Missing image"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Not on the payment proof step"
// @Router /sessions/{id}/proof [post]
func NewProofUploadHandler(svc ProofUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		image, ok := readImage(w, r)
		if !ok {
			return
		}

		view, err := svc.UploadProof(r.Context(), id, image)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image is required")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return nil, false
	}
	return data, true
}
