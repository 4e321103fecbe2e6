package facades

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// PaymentDetailsHTTPFacade talks to the remote payment-details endpoint.
type PaymentDetailsHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewPaymentDetailsHTTPFacade creates a new facade for the given endpoint.
func NewPaymentDetailsHTTPFacade(baseURL string, client *http.Client) *PaymentDetailsHTTPFacade {
	return &PaymentDetailsHTTPFacade{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (f *PaymentDetailsHTTPFacade) withID(id int64) string {
	return fmt.Sprintf("%s?%s", f.baseURL, url.Values{"id": {strconv.FormatInt(id, 10)}}.Encode())
}

// List returns every payment detail, newest first as ordered by the server.
func (f *PaymentDetailsHTTPFacade) List(ctx context.Context) ([]models.PaymentDetail, error) {
	var details []models.PaymentDetail
	if err := doJSON(ctx, f.client, http.MethodGet, f.baseURL, nil, &details); err != nil {
		logger.Log.Errorw("failed to list payment details", "error", err)
		return nil, err
	}
	if details == nil {
		details = []models.PaymentDetail{}
	}
	return details, nil
}

// Get returns one payment detail by id.
func (f *PaymentDetailsHTTPFacade) Get(ctx context.Context, id int64) (*models.PaymentDetail, error) {
	var detail models.PaymentDetail
	if err := doJSON(ctx, f.client, http.MethodGet, f.withID(id), nil, &detail); err != nil {
		logger.Log.Errorw("failed to get payment detail", "id", id, "error", err)
		return nil, err
	}
	return &detail, nil
}

// Create adds a payment detail.
func (f *PaymentDetailsHTTPFacade) Create(ctx context.Context, form models.PaymentDetailForm) (*models.PaymentDetail, error) {
	var detail models.PaymentDetail
	if err := doJSON(ctx, f.client, http.MethodPost, f.baseURL, form, &detail); err != nil {
		logger.Log.Errorw("failed to create payment detail", "recipient", form.RecipientName, "error", err)
		return nil, err
	}
	return &detail, nil
}

// Update replaces the fields of an existing payment detail.
func (f *PaymentDetailsHTTPFacade) Update(ctx context.Context, id int64, form models.PaymentDetailForm) (*models.PaymentDetail, error) {
	req := models.PaymentDetailUpdateRequest{ID: id, PaymentDetailForm: form}

	var detail models.PaymentDetail
	if err := doJSON(ctx, f.client, http.MethodPut, f.baseURL, req, &detail); err != nil {
		logger.Log.Errorw("failed to update payment detail", "id", id, "error", err)
		return nil, err
	}
	return &detail, nil
}

// Delete removes a payment detail.
func (f *PaymentDetailsHTTPFacade) Delete(ctx context.Context, id int64) error {
	if err := doJSON(ctx, f.client, http.MethodDelete, f.withID(id), nil, nil); err != nil {
		logger.Log.Errorw("failed to delete payment detail", "id", id, "error", err)
		return err
	}
	return nil
}
