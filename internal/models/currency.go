package models

// Currency is an ISO code of a top-up currency.
type Currency string

// Supported currency codes
const (
	CNY Currency = "CNY"
	RUB Currency = "RUB"
)

// DefaultCurrency is preselected on the amount step and in the admin form.
const DefaultCurrency = CNY

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	switch c {
	case CNY, RUB:
		return true
	}
	return false
}
