package models

import "time"

// RelayKind tags an image forwarded to the operator channel.
type RelayKind string

const (
	RelayQRCode       RelayKind = "qr_code"
	RelayPaymentProof RelayKind = "payment_proof"
)

// RelayMessage is the body posted to the notification relay.
type RelayMessage struct {
	Image         string    `json:"image"` // data URL
	Amount        float64   `json:"amount"`
	Currency      Currency  `json:"currency"`
	TransactionID *int64    `json:"transaction_id,omitempty"`
	Type          RelayKind `json:"type,omitempty"`
}

// RelayFailure is a journal entry for a relay delivery that did not go through.
// swagger:model RelayFailure
type RelayFailure struct {
	ID            int64     `json:"id" db:"id"`
	Kind          RelayKind `json:"kind" db:"kind"`
	TransactionID *int64    `json:"transaction_id,omitempty" db:"transaction_id"`
	Error         string    `json:"error" db:"error"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
