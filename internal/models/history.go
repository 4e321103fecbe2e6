package models

// HistoryEntry is one line of the history screen.
// swagger:model HistoryEntry
type HistoryEntry struct {
	Transaction
	DisplayAmount string `json:"display_amount"`
}

// HistoryResponse represents the transaction history of the session
// swagger:model HistoryResponse
type HistoryResponse struct {
	Transactions  []HistoryEntry `json:"transactions"`
	Notifications []Notification `json:"notifications"`
}
