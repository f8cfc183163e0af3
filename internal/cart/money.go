package cart

import "github.com/tmoeller732/five-star-flame-grill-api/internal/model"

// All monetary values are integer cents, so repeated add/update cycles cannot
// accumulate floating-point drift.

// LineItemTotal returns (base price + sum of customization prices) * quantity.
// Quantity must be positive; the store treats <= 0 as a removal before this is
// ever called.
func LineItemTotal(basePriceCents int64, customizations []model.Customization, quantity int) int64 {
	unit := basePriceCents
	for _, c := range customizations {
		unit += c.PriceCents
	}
	return unit * int64(quantity)
}

// CartTotal returns the sum of each item's TotalCents.
func CartTotal(items []model.LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.TotalCents
	}
	return total
}

// ItemCount returns the sum of each item's quantity.
func ItemCount(items []model.LineItem) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
