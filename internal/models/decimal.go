package models

import "github.com/shopspring/decimal"

// SafeDiv divides a by b, yielding zero when b is zero. Every ratio in the
// engine degrades this way instead of raising or producing infinities.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// SafeDivPct is SafeDiv expressed as a percentage.
func SafeDivPct(a, b decimal.Decimal) decimal.Decimal {
	return SafeDiv(a, b).Mul(decimal.NewFromInt(100))
}
