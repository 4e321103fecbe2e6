package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRelayFailureRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	id := int64(12)
	mock.ExpectExec("INSERT INTO relay_failures").
		WithArgs("payment_proof", int64(12), "relay down").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewRelayFailureRepository(db)
	err := repo.Save(context.Background(), models.RelayFailure{
		Kind:          models.RelayPaymentProof,
		TransactionID: &id,
		Error:         "relay down",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayFailureRepository_SaveError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO relay_failures").WillReturnError(errors.New("db down"))

	repo := NewRelayFailureRepository(db)
	err := repo.Save(context.Background(), models.RelayFailure{Kind: models.RelayQRCode, Error: "x"})

	assert.EqualError(t, err, "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayFailureRepository_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "kind", "transaction_id", "error", "created_at"}).
		AddRow(2, "payment_proof", 7, "timeout", now).
		AddRow(1, "qr_code", nil, "bad gateway", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, kind, transaction_id, error, created_at FROM relay_failures").
		WithArgs(50).
		WillReturnRows(rows)

	repo := NewRelayFailureRepository(db)
	failures, err := repo.ListRecent(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, failures, 2)
	assert.Equal(t, models.RelayPaymentProof, failures[0].Kind)
	if assert.NotNil(t, failures[0].TransactionID) {
		assert.Equal(t, int64(7), *failures[0].TransactionID)
	}
	assert.Nil(t, failures[1].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayFailureRepository_EnsureSchema(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS relay_failures").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRelayFailureRepository(db)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayFailureRepository_LogsStructuredQuery(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = original }()

	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO relay_failures").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, kind").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "transaction_id", "error", "created_at"}))

	repo := NewRelayFailureRepository(db)
	assert.NoError(t, repo.Save(context.Background(), models.RelayFailure{Kind: models.RelayQRCode, Error: "x"}))
	_, err := repo.ListRecent(context.Background(), 5)
	assert.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "relay journal insert", entries[0].Message)
	assert.Equal(t, "relay journal select", entries[1].Message)
	for _, e := range entries {
		assert.Equal(t, zapcore.InfoLevel, e.Level)
		fields := e.ContextMap()
		assert.Contains(t, fields["query"], "relay_failures")
		assert.Contains(t, fields, "args")
	}
}
