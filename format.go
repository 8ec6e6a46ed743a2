package wealthpilot

import (
	"fmt"

	money "github.com/Rhymond/go-money"
)

// FormatUSD renders a dollar amount with the USD currency formatter.
func FormatUSD(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}

// FormatSignedUSD is like FormatUSD but keeps an explicit sign, rendering
// zero as "-" so tables stay readable.
func FormatSignedUSD(amount float64) string {
	if amount == 0 {
		return "-"
	}
	if amount > 0 {
		return "+" + FormatUSD(amount)
	}
	return "-" + FormatUSD(-amount)
}

// FormatPercent renders a fraction (0.125) as a percentage ("12.5%").
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// FormatShares renders a share count with up to three decimal places.
func FormatShares(shares float64) string {
	return fmt.Sprintf("%.3f", shares)
}
