// Package totals turns invoice line items and rates into derived amounts.
package totals

import (
	"math"

	"invoicer/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Calculate returns subtotal, GST, discount and grand total for the given
// items. Rates are percentage points and are neither validated nor clamped.
// Non-finite inputs count as 0. The function is pure.
func Calculate(items []entities.LineItem, gstRate, discountRate float64) entities.Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += Finite(it.Quantity) * Finite(it.Amount)
	}

	gst := subtotal * (Finite(gstRate) / 100)
	discount := subtotal * (Finite(discountRate) / 100)

	return entities.Totals{
		Subtotal: subtotal,
		GST:      gst,
		Discount: discount,
		Total:    subtotal + gst - discount,
	}
}

// Finite maps NaN and ±Inf to 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds half away from zero to cents.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(Finite(v)).Round(2).Float64()
	return f
}

// FormatUSD renders v with exactly two decimals, e.g. "105.00 USD".
func FormatUSD(v float64) string {
	return decimal.NewFromFloat(Finite(v)).StringFixed(2) + " USD"
}
