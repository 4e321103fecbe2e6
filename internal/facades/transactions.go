package facades

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// UpdateMode selects how the transaction identifier travels in a PUT.
type UpdateMode string

const (
	UpdateInBody UpdateMode = "body" // PUT base with {"id": ..., "status": ...}
	UpdateInPath UpdateMode = "path" // PUT base/{id} with {"status": ...}
)

// ParseUpdateMode validates a configured update mode.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch m := UpdateMode(strings.ToLower(s)); m {
	case UpdateInBody, UpdateInPath:
		return m, nil
	}
	return "", fmt.Errorf("unknown transactions update mode %q", s)
}

// TransactionsHTTPFacade talks to the remote transactions endpoint.
type TransactionsHTTPFacade struct {
	baseURL string
	client  *http.Client
	mode    UpdateMode
}

// NewTransactionsHTTPFacade creates a new facade for the given endpoint.
func NewTransactionsHTTPFacade(baseURL string, client *http.Client, mode UpdateMode) *TransactionsHTTPFacade {
	return &TransactionsHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		mode:    mode,
	}
}

// List returns all transactions.
func (f *TransactionsHTTPFacade) List(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := doJSON(ctx, f.client, http.MethodGet, f.baseURL, nil, &txs); err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// Create creates a pending transaction and returns the server's record.
func (f *TransactionsHTTPFacade) Create(ctx context.Context, amount float64, currency models.Currency) (*models.Transaction, error) {
	req := models.TransactionCreateRequest{Amount: amount, Currency: currency}

	var tx models.Transaction
	if err := doJSON(ctx, f.client, http.MethodPost, f.baseURL, req, &tx); err != nil {
		logger.Log.Errorw("failed to create transaction", "amount", amount, "currency", currency, "error", err)
		return nil, err
	}
	return &tx, nil
}

// UpdateStatus sets the status of an existing transaction.
func (f *TransactionsHTTPFacade) UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) error {
	url := f.baseURL
	req := models.TransactionUpdateRequest{Status: status}
	if f.mode == UpdateInPath {
		url = fmt.Sprintf("%s/%d", f.baseURL, id)
	} else {
		req.ID = id
	}

	if err := doJSON(ctx, f.client, http.MethodPut, url, req, nil); err != nil {
		logger.Log.Errorw("failed to update transaction status", "transaction_id", id, "status", status, "error", err)
		return err
	}
	return nil
}
