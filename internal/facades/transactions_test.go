package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTransactionsHTTPFacade_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.TransactionCreateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1000.0, req.Amount)
		assert.Equal(t, models.CNY, req.Currency)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"amount":1000,"currency":"CNY","amount_cny":1000,"status":"pending","date":"2025-10-25T10:00:00","payment_details":{"recipient_name":"Zhang Wei","account_number":"+86 138 0013 8000"}}`))
	}))
	defer srv.Close()

	f := NewTransactionsHTTPFacade(srv.URL, NewHTTPClient(time.Second), UpdateInBody)
	tx, err := f.Create(context.Background(), 1000, models.CNY)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, models.StatusPending, tx.Status)
	assert.Equal(t, "Zhang Wei", tx.PaymentDetails.RecipientName)
}

func TestTransactionsHTTPFacade_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[{"id":1,"amount":11400,"currency":"RUB","amount_cny":1000,"status":"completed"}]`))
	}))
	defer srv.Close()

	f := NewTransactionsHTTPFacade(srv.URL, NewHTTPClient(time.Second), UpdateInBody)
	txs, err := f.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, models.StatusCompleted, txs[0].Status)
}

func TestTransactionsHTTPFacade_ListServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewTransactionsHTTPFacade(srv.URL, NewHTTPClient(time.Second), UpdateInBody)
	txs, err := f.List(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Nil(t, txs)
}

func TestTransactionsHTTPFacade_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		mode       UpdateMode
		wantPath   string
		wantBodyID int64
	}{
		{name: "id in body", mode: UpdateInBody, wantPath: "/", wantBodyID: 42},
		{name: "id in path", mode: UpdateInPath, wantPath: "/42", wantBodyID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)

				var req models.TransactionUpdateRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, tt.wantBodyID, req.ID)
				assert.Equal(t, models.StatusCompleted, req.Status)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			f := NewTransactionsHTTPFacade(srv.URL+"/", NewHTTPClient(time.Second), tt.mode)
			assert.NoError(t, f.UpdateStatus(context.Background(), 42, models.StatusCompleted))
		})
	}
}

func TestParseUpdateMode(t *testing.T) {
	m, err := ParseUpdateMode("PATH")
	assert.NoError(t, err)
	assert.Equal(t, UpdateInPath, m)

	_, err = ParseUpdateMode("query")
	assert.Error(t, err)
}
