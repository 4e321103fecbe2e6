package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

const relayFailuresSchema = `
	CREATE TABLE IF NOT EXISTS relay_failures (
		id BIGSERIAL PRIMARY KEY,
		kind VARCHAR(32) NOT NULL,
		transaction_id BIGINT,
		error TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// RelayFailureRepository journals failed relay deliveries for operators
type RelayFailureRepository struct {
	db *sqlx.DB
}

// NewRelayFailureRepository creates a new journal repository
func NewRelayFailureRepository(db *sqlx.DB) *RelayFailureRepository {
	return &RelayFailureRepository{db: db}
}

// EnsureSchema creates the journal table when missing
func (r *RelayFailureRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, relayFailuresSchema)
	return err
}

// Save appends one failure
func (r *RelayFailureRepository) Save(ctx context.Context, f models.RelayFailure) error {
	query := `
		INSERT INTO relay_failures (kind, transaction_id, error)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, f.Kind, f.TransactionID, f.Error)

	logger.Log.Infow("relay journal insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{f.Kind, f.TransactionID},
		"error", err,
	)

	return err
}

// ListRecent returns at most limit failures, newest first
func (r *RelayFailureRepository) ListRecent(ctx context.Context, limit int) ([]models.RelayFailure, error) {
	const query = `
		SELECT id, kind, transaction_id, error, created_at
		FROM relay_failures
		ORDER BY created_at DESC
		LIMIT $1
	`

	failures := []models.RelayFailure{}
	err := r.db.SelectContext(ctx, &failures, query, limit)

	logger.Log.Infow("relay journal select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(failures),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return failures, nil
}
