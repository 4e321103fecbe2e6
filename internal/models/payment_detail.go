package models

// PaymentDetail is a recipient account offered to payers.
// swagger:model PaymentDetail
type PaymentDetail struct {
	ID            int64    `json:"id"`
	RecipientName string   `json:"recipient_name"`
	AccountNumber string   `json:"account_number"`
	Currency      Currency `json:"currency"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// PaymentDetailSnapshot is the part of a payment detail embedded into a transaction.
type PaymentDetailSnapshot struct {
	RecipientName string `json:"recipient_name"`
	AccountNumber string `json:"account_number"`
}

// PaymentDetailForm holds the admin form values for creating or updating a payment detail.
// swagger:model PaymentDetailForm
type PaymentDetailForm struct {
	// required: true
	// example: Zhang Wei
	RecipientName string `json:"recipient_name" validate:"required"`

	// required: true
	// example: +86 138 0013 8000
	AccountNumber string `json:"account_number" validate:"required"`

	// required: true
	// example: CNY
	Currency Currency `json:"currency" validate:"required,oneof=CNY RUB"`

	IsActive bool `json:"is_active"`
}

// DefaultPaymentDetailForm returns the form the admin panel resets to.
func DefaultPaymentDetailForm() PaymentDetailForm {
	return PaymentDetailForm{Currency: DefaultCurrency, IsActive: true}
}

// FormFromPaymentDetail fills a form from an existing record.
func FormFromPaymentDetail(d PaymentDetail) PaymentDetailForm {
	return PaymentDetailForm{
		RecipientName: d.RecipientName,
		AccountNumber: d.AccountNumber,
		Currency:      d.Currency,
		IsActive:      d.IsActive,
	}
}

// PaymentDetailUpdateRequest is the body of an update call.
type PaymentDetailUpdateRequest struct {
	ID int64 `json:"id"`
	PaymentDetailForm
}
