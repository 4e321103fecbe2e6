package models

// AdminView selects the admin sub-view.
type AdminView string

const (
	AdminPaymentDetails AdminView = "payment-details"
	AdminTransactions   AdminView = "transactions"
)

// IsValid reports whether v names a known sub-view.
func (v AdminView) IsValid() bool {
	return v == AdminPaymentDetails || v == AdminTransactions
}

// AdminState is the admin panel payload of a session.
// swagger:model AdminState
type AdminState struct {
	View           AdminView         `json:"view"`
	EditingID      *int64            `json:"editing_id,omitempty"` // Record being edited, nil when creating
	Form           PaymentDetailForm `json:"form"`
	PaymentDetails []PaymentDetail   `json:"payment_details"`
	Transactions   []Transaction     `json:"transactions"`
}

// NewAdminState returns the panel as it looks when first opened.
func NewAdminState() *AdminState {
	return &AdminState{
		View:           AdminPaymentDetails,
		Form:           DefaultPaymentDetailForm(),
		PaymentDetails: []PaymentDetail{},
		Transactions:   []Transaction{},
	}
}

// ResetForm leaves the edit session.
func (s *AdminState) ResetForm() {
	s.EditingID = nil
	s.Form = DefaultPaymentDetailForm()
}

// Clone returns a deep copy, or nil for a nil state.
func (s *AdminState) Clone() *AdminState {
	if s == nil {
		return nil
	}
	out := *s
	if s.EditingID != nil {
		id := *s.EditingID
		out.EditingID = &id
	}
	out.PaymentDetails = append([]PaymentDetail{}, s.PaymentDetails...)
	out.Transactions = append([]Transaction{}, s.Transactions...)
	return &out
}
