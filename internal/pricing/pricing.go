package pricing

import (
	"math"

	"slotdesk/internal/domain/model"
)

// Totals is the result of pricing an order.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// ComputeTotals prices line items with a percentage discount. The rate is clamped
// to [0,100]; NaN and infinities count as 0. Pure, no failure modes.
func ComputeTotals(items []model.OrderItem, discountRatePercent float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	rate := ClampRate(discountRatePercent)
	discount := subtotal * rate / 100

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

// ClampRate normalizes a discount percentage into [0,100].
func ClampRate(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
