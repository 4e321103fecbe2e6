package models

// NavigateRequest represents the JSON body for switching screens
// swagger:model NavigateRequest
type NavigateRequest struct {
	// Target screen
	// required: true
	// example: topup
	Screen Screen `json:"screen"`
}

// AmountRequest represents the JSON body for the amount step
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount as typed by the user
	// required: true
	// example: 1000
	Amount string `json:"amount"`

	// Currency
	// required: true
	// example: CNY
	Currency Currency `json:"currency"`
}

// AdminViewRequest selects the admin sub-view
// swagger:model AdminViewRequest
type AdminViewRequest struct {
	// example: payment-details
	View AdminView `json:"view"`
}

// AdminRecordRequest targets one payment detail
// swagger:model AdminRecordRequest
type AdminRecordRequest struct {
	// example: 1
	ID int64 `json:"id"`
}

// AdminDeleteRequest deletes a payment detail once Confirmed is set
// swagger:model AdminDeleteRequest
type AdminDeleteRequest struct {
	// example: 1
	ID int64 `json:"id"`

	// Interactive confirmation
	// example: true
	Confirmed bool `json:"confirmed"`
}

// RelayFailuresResponse lists journaled relay failures
// swagger:model RelayFailuresResponse
type RelayFailuresResponse struct {
	Failures []RelayFailure `json:"failures"`
}
