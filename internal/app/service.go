package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI)
// call. It decouples presentation from the transaction engine.
// Implementations must contain no fmt.Println, no ANSI codes, and no
// display logic of any kind.
type ApplicationService interface {
	// Login verifies a cashier PIN against the directory and binds the
	// session context. All sales are attributed to the active cashier.
	Login(ctx context.Context, cashierID, pin string) (*CashierResult, error)

	// Logout clears the session context.
	Logout(ctx context.Context) error

	// ActiveCashier returns the bound session cashier, or
	// core.ErrNoActiveCashier when nobody is signed in.
	ActiveCashier() (*CashierResult, error)

	// ListCashiers returns the cashier directory (PINs blanked).
	ListCashiers() (*CashierListResult, error)

	// ListProducts returns the catalog, optionally filtered by category
	// (empty string means all).
	ListProducts(category string) (*ProductListResult, error)

	// SearchProducts returns catalog entries matching the query over
	// name, SKU and barcode.
	SearchProducts(query string) (*ProductListResult, error)

	// ListCategories returns the distinct catalog categories, sorted.
	ListCategories() ([]string, error)

	// CurrentCart returns the active draft sale. Sale is nil when the
	// register is free.
	CurrentCart() (*CartResult, error)

	// StartNewSale opens a fresh empty draft, parking any current draft
	// that holds items.
	StartNewSale(ctx context.Context) (*CartResult, error)

	// AddToCart resolves ref (product id, SKU or barcode) against the
	// catalog and adds it to the draft, creating the draft if needed.
	AddToCart(ctx context.Context, ref string, quantity int) (*CartResult, error)

	// UpdateQuantity sets a line item's quantity exactly. Zero or less
	// removes the item. Unknown refs are silent no-ops.
	UpdateQuantity(ctx context.Context, ref string, quantity int) (*CartResult, error)

	// RemoveFromCart deletes a line item if present.
	RemoveFromCart(ctx context.Context, ref string) (*CartResult, error)

	// ApplyItemDiscount sets a percentage discount (clamped to 0–100) on
	// a line item.
	ApplyItemDiscount(ctx context.Context, ref string, pct decimal.Decimal) (*CartResult, error)

	// ClearCart empties the draft's items, keeping customer and note.
	ClearCart(ctx context.Context) (*CartResult, error)

	// SetCustomer attaches a customer name to the draft.
	SetCustomer(ctx context.Context, name string) error

	// SetNote attaches a note to the draft.
	SetNote(ctx context.Context, note string) error

	// ParkSale suspends the current draft. No-op without a non-empty draft.
	ParkSale(ctx context.Context) error

	// ListParked returns the parked pool in park order.
	ListParked() (*ParkedListResult, error)

	// ResumeSale promotes a parked sale back to the active draft, parking
	// any current draft with items first.
	ResumeSale(ctx context.Context, saleID string) (*CartResult, error)

	// CompleteSale finalizes the draft with the given payment set,
	// assigns a receipt number and archives the sale.
	CompleteSale(ctx context.Context, req CompleteSaleRequest) (*SaleResult, error)

	// VoidSale abandons the current draft, archiving it as voided if it
	// held items.
	VoidSale(ctx context.Context) error

	// RefundSale transitions a completed sale to refunded with a
	// mandatory reason.
	RefundSale(ctx context.Context, saleID, reason string) (*SaleResult, error)

	// History returns archived sales, optionally filtered by status
	// (empty string means all), most recent first.
	History(status string) (*HistoryResult, error)

	// GetSale looks up a sale by id across the current draft, the parked
	// pool and the history ledger.
	GetSale(saleID string) (*SaleResult, error)

	// Report aggregates the history ledger into the sales report.
	Report() (*ReportResult, error)
}
