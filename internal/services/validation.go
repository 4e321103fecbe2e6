package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// MinAmounts holds the per-currency minimum top-up. Currencies without an entry only need a positive amount.
var MinAmounts = map[models.Currency]float64{
	models.RUB: 500,
}

// ParseAmount validates the free-text amount typed on the amount step.
func ParseAmount(raw string, currency models.Currency) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	if min, ok := MinAmounts[currency]; ok && v < min {
		return 0, fmt.Errorf("%w: %s %s", ErrAmountBelowMinimum, strconv.FormatFloat(min, 'f', -1, 64), currency)
	}
	return v, nil
}
