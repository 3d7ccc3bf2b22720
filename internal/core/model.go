package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale.
//
//	draft → parked    (explicit park, requires ≥1 item)
//	parked → draft    (explicit resume)
//	draft → completed (requires ≥1 item and at least one payment)
//	draft → voided    (with or without items)
//	completed → refunded
//
// Only draft sales accept cart mutations.
type SaleStatus string

const (
	StatusDraft     SaleStatus = "draft"
	StatusParked    SaleStatus = "parked"
	StatusCompleted SaleStatus = "completed"
	StatusVoided    SaleStatus = "voided"
	StatusRefunded  SaleStatus = "refunded"
)

// CanTransition reports whether a sale may legally move from s to target.
func (s SaleStatus) CanTransition(target SaleStatus) bool {
	switch s {
	case StatusDraft:
		return target == StatusParked || target == StatusCompleted || target == StatusVoided
	case StatusParked:
		return target == StatusDraft
	case StatusCompleted:
		return target == StatusRefunded
	default:
		return false
	}
}

// Mutable reports whether line items and discounts may still change.
func (s SaleStatus) Mutable() bool {
	return s == StatusDraft
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Payment is one tender record attached to a completed sale.
// The engine records payments as given; terminal integration is simulated upstream.
type Payment struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// Product is catalog reference data. The engine never mutates the catalog;
// each line item embeds a copy taken at add-to-cart time so later catalog
// price changes do not alter in-progress or historical sales.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Barcode  string          `json:"barcode,omitempty"`
}

// Cashier is a register operator from the cashier directory.
// PIN verification happens in the directory, never in the engine.
type Cashier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

// LineItem is one product entry within a sale.
// Quantity is always ≥ 1; Discount is a percentage in [0, 100].
type LineItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Discount decimal.Decimal `json:"discount"`
}

// Gross returns unit price × quantity before any discount.
func (li LineItem) Gross() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// DiscountAmount returns the currency amount deducted by the item discount.
func (li LineItem) DiscountAmount() decimal.Decimal {
	return li.Gross().Mul(li.Discount).Div(decimal.NewFromInt(100))
}

// Net returns the item total after discount.
func (li LineItem) Net() decimal.Decimal {
	return li.Gross().Sub(li.DiscountAmount())
}

// Sale is one transaction. The four derived amounts are recomputed from
// Items after every mutation and are never patched incrementally.
type Sale struct {
	ID            string          `json:"id"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        SaleStatus      `json:"status"`
	Payments      []Payment       `json:"payments"`
	CashierID     string          `json:"cashier_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	RefundedAt    *time.Time      `json:"refunded_at,omitempty"`
	RefundReason  string          `json:"refund_reason,omitempty"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
}

// ItemCount returns the number of units in the cart (sum of quantities).
func (s *Sale) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// itemIndex returns the position of the line item holding productID, or -1.
func (s *Sale) itemIndex(productID string) int {
	for i := range s.Items {
		if s.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// recalculate refreshes the derived amounts from the current item list.
func (s *Sale) recalculate() {
	t := CalculateTotals(s.Items)
	s.Subtotal = t.Subtotal
	s.Discount = t.Discount
	s.Tax = t.Tax
	s.Total = t.Total
}

// clone returns a deep copy so callers cannot mutate engine-owned state.
func (s *Sale) clone() *Sale {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = append([]LineItem(nil), s.Items...)
	c.Payments = append([]Payment(nil), s.Payments...)
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	if s.RefundedAt != nil {
		t := *s.RefundedAt
		c.RefundedAt = &t
	}
	return &c
}
