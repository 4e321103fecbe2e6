package models

// Flow event names published to Kafka.
const (
	EventTransactionCreated  = "transaction_created"
	EventProofSubmitted      = "proof_submitted"
	EventTransactionResolved = "transaction_resolved"
)

// TopupEvent represents a flow milestone published for downstream consumers.
type TopupEvent struct {
	Event         string            `json:"event"`          // One of the Event* names
	SessionID     string            `json:"session_id"`     // Session that produced the event
	TransactionID int64             `json:"transaction_id"` // Remote transaction identifier
	Amount        float64           `json:"amount"`         // Amount in the entered currency
	Currency      Currency          `json:"currency"`       // Entered currency
	AmountCNY     float64           `json:"amount_cny"`     // Amount converted to CNY
	Status        TransactionStatus `json:"status"`         // Status at the time of the event
	Timestamp     int64             `json:"timestamp"`      // Unix seconds
}
