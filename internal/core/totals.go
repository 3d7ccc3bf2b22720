package core

import "github.com/shopspring/decimal"

// TaxRate is the fixed rate applied to the discounted subtotal.
// The operating currency carries 3 minor-unit digits; amounts stay exact
// internally and are rounded only when formatted for display.
var TaxRate = decimal.New(16, -2)

// Totals holds the four derived amounts of a sale.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateTotals computes the derived amounts for a line-item list:
//
//	subtotal = Σ price × qty
//	discount = Σ price × qty × pct/100
//	tax      = (subtotal − discount) × TaxRate
//	total    = subtotal − discount + tax
//
// Pure and idempotent: recomputing on an unchanged list yields identical
// results. Malformed input (negative price or quantity) is the caller's
// responsibility to prevent.
func CalculateTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Gross())
		discount = discount.Add(it.DiscountAmount())
	}
	net := subtotal.Sub(discount)
	tax := net.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    net.Add(tax),
	}
}

// ClampDiscount forces a discount percentage into [0, 100].
func ClampDiscount(pct decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
