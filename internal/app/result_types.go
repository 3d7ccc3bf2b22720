package app

import "celtis-pos/internal/core"

// CashierResult is returned by Login and ActiveCashier.
type CashierResult struct {
	Cashier core.Cashier
}

// CashierListResult is returned by ListCashiers.
type CashierListResult struct {
	Cashiers []core.Cashier
}

// ProductListResult is returned by catalog queries.
type ProductListResult struct {
	Products []core.Product
}

// CartResult is returned by cart operations. Sale is nil when the
// register has no active draft.
type CartResult struct {
	Sale      *core.Sale
	ItemCount int
}

// ParkedListResult is returned by ListParked.
type ParkedListResult struct {
	Sales []core.Sale
}

// SaleResult is returned by sale lookups and lifecycle transitions.
type SaleResult struct {
	Sale *core.Sale
}

// HistoryResult is returned by History.
type HistoryResult struct {
	Sales []core.Sale
}

// ReportResult is returned by Report.
type ReportResult struct {
	Report core.SalesReport
}
