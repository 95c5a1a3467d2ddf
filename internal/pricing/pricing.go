// Package pricing implements the shop's quote calculators. All money math
// runs on decimals; results expose two-decimal strings for display.
package pricing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// money renders an amount the way quotes display it.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// safeDiv divides a by b, zero when b is zero. Quote inputs routinely
// arrive with zero quantities while the user is still typing.
func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
