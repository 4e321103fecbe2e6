package models

// TransactionStatus is the server-side state of a top-up.
type TransactionStatus string

// Transaction statuses. A transaction starts pending; completed and failed are terminal.
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether no further transition is expected.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Transaction represents a top-up record as returned by the remote transactions endpoint.
// swagger:model Transaction
type Transaction struct {
	ID              int64                  `json:"id"`                          // Server-assigned identifier
	Amount          float64                `json:"amount"`                      // Amount in the entered currency
	Currency        Currency               `json:"currency"`                    // Entered currency
	AmountCNY       float64                `json:"amount_cny"`                  // Amount converted to CNY
	Date            string                 `json:"date,omitempty"`              // Creation timestamp as formatted by the server
	Status          TransactionStatus      `json:"status"`                      // pending, completed or failed
	QRCodeURL       string                 `json:"qr_code_url,omitempty"`       // Uploaded QR-code image
	PaymentProofURL string                 `json:"payment_proof_url,omitempty"` // Uploaded payment proof image
	PaymentDetails  *PaymentDetailSnapshot `json:"payment_details,omitempty"`   // Requisites assigned by the server
}

// TransactionCreateRequest is the body of a transaction creation call.
type TransactionCreateRequest struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// TransactionUpdateRequest is the body of a status update call.
// ID is omitted when the identifier travels in the URL path.
type TransactionUpdateRequest struct {
	ID     int64             `json:"id,omitempty"`
	Status TransactionStatus `json:"status"`
}
