package services

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// TransactionLister reads the remote transaction list.
type TransactionLister interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

// TransactionStore is the remote transactions endpoint.
type TransactionStore interface {
	TransactionLister
	Create(ctx context.Context, amount float64, currency models.Currency) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) error
}

// PaymentDetailStore is the remote payment-details endpoint.
type PaymentDetailStore interface {
	List(ctx context.Context) ([]models.PaymentDetail, error)
	Get(ctx context.Context, id int64) (*models.PaymentDetail, error)
	Create(ctx context.Context, form models.PaymentDetailForm) (*models.PaymentDetail, error)
	Update(ctx context.Context, id int64, form models.PaymentDetailForm) (*models.PaymentDetail, error)
	Delete(ctx context.Context, id int64) error
}

// RelaySender posts an image to the operator channel.
type RelaySender interface {
	Send(ctx context.Context, msg models.RelayMessage) error
}

// RelayJournal keeps failed relay deliveries for operators.
type RelayJournal interface {
	Save(ctx context.Context, f models.RelayFailure) error
	ListRecent(ctx context.Context, limit int) ([]models.RelayFailure, error)
}

// EventPublisher publishes flow events.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.TopupEvent)
}

// SessionRepository persists session snapshots.
type SessionRepository interface {
	Save(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
