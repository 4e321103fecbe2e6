// Package rates holds the fixed CNY/RUB conversion used for display.
package rates

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// CNYToRUB is the number of roubles in one yuan.
const CNYToRUB = 11.40

// LegacyPreviewRate is the divisor one amount-entry preview used.
// It disagrees with CNYToRUB and must not be used for display.
const LegacyPreviewRate = 11.45

// ErrRateDiscrepancy is returned by CheckRate for any divisor other than CNYToRUB.
var ErrRateDiscrepancy = errors.New("conversion rate differs from the canonical CNY/RUB rate")

// CheckRate flags a divisor that is not the canonical rate.
func CheckRate(rate float64) error {
	if rate != CNYToRUB {
		return fmt.Errorf("%w: got %.2f, want %.2f", ErrRateDiscrepancy, rate, CNYToRUB)
	}
	return nil
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ConvertRUB converts roubles to yuan with the given divisor.
func ConvertRUB(amount, rate float64) float64 {
	return Round2(amount / rate)
}

// ToCNY returns the CNY equivalent of amount.
func ToCNY(amount float64, currency models.Currency) float64 {
	if currency == models.RUB {
		return ConvertRUB(amount, CNYToRUB)
	}
	return amount
}

// FromCNY returns the amount of currency worth amountCNY yuan.
func FromCNY(amountCNY float64, currency models.Currency) float64 {
	if currency == models.RUB {
		return Round2(amountCNY * CNYToRUB)
	}
	return amountCNY
}

// DisplayAmount renders an amount: "¥ 1000" for CNY, "₽ 11400 (¥ 1000.00)" for RUB.
func DisplayAmount(amount float64, currency models.Currency) string {
	if currency == models.RUB {
		return fmt.Sprintf("₽ %s (¥ %.2f)", formatPlain(amount), ToCNY(amount, currency))
	}
	return "¥ " + formatPlain(amount)
}

// Preview is the hint shown under the amount field while typing.
// It is empty for CNY and for input that is not a positive number. Surrounding spaces are ignored.
func Preview(raw string, currency models.Currency) string {
	if currency != models.RUB {
		return ""
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return ""
	}
	return fmt.Sprintf("≈ ¥ %.2f", ToCNY(v, currency))
}

// HistoryLine renders a stored transaction the way the history list shows it.
func HistoryLine(tx models.Transaction) string {
	amountCNY := tx.AmountCNY
	if amountCNY == 0 {
		amountCNY = ToCNY(tx.Amount, tx.Currency)
	}
	if tx.Currency == models.RUB {
		return fmt.Sprintf("₽ %s (¥ %s)", formatPlain(tx.Amount), formatPlain(amountCNY))
	}
	return "¥ " + formatPlain(amountCNY)
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
