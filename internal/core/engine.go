package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Engine owns the single in-progress draft sale, the parked-sale pool and
// the history ledger. Every cart mutation ends with a full recompute of the
// derived totals and a synchronous snapshot save; there is never a pending
// intermediate state. The engine serves one cashier session at a time and
// is not safe for concurrent use.
type Engine struct {
	store    Store
	ledger   *Ledger
	cashier  *Cashier
	current  *Sale
	parked   []Sale
	receipts ReceiptCounter
}

// NewEngine restores an engine from a snapshot. A nil snapshot starts
// empty; a nil store disables persistence (used in tests).
func NewEngine(store Store, snap *Snapshot) *Engine {
	e := &Engine{store: store}
	if snap == nil {
		snap = &Snapshot{}
	}
	e.current = snap.CurrentSale.clone()
	e.parked = append([]Sale(nil), snap.ParkedSales...)
	e.ledger = NewLedger(snap.Sales)
	if snap.Cashier != nil {
		c := *snap.Cashier
		e.cashier = &c
	}
	e.receipts = snap.Receipts
	return e
}

// Snapshot returns a copy of the full engine state for persistence.
func (e *Engine) Snapshot() *Snapshot {
	snap := &Snapshot{
		CurrentSale: e.current.clone(),
		ParkedSales: append([]Sale(nil), e.parked...),
		Sales:       e.ledger.All(),
		Receipts:    e.receipts,
	}
	if e.cashier != nil {
		c := *e.cashier
		snap.Cashier = &c
	}
	return snap
}

func (e *Engine) persist(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	if err := e.store.Save(ctx, e.Snapshot()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// ── Session ──────────────────────────────────────────────────────────────────

// SetCashier binds the active cashier session. The cashier record comes
// from the directory; the engine only attributes sales to it.
func (e *Engine) SetCashier(ctx context.Context, c Cashier) error {
	e.cashier = &c
	return e.persist(ctx)
}

// ClearCashier ends the active session.
func (e *Engine) ClearCashier(ctx context.Context) error {
	e.cashier = nil
	return e.persist(ctx)
}

// ActiveCashier returns the current session cashier, if any.
func (e *Engine) ActiveCashier() (Cashier, bool) {
	if e.cashier == nil {
		return Cashier{}, false
	}
	return *e.cashier, true
}

func (e *Engine) newDraft() (*Sale, error) {
	if e.cashier == nil {
		return nil, ErrNoActiveCashier
	}
	return &Sale{
		ID:        uuid.NewString(),
		Status:    StatusDraft,
		CashierID: e.cashier.ID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// parkCurrent moves a non-empty current draft into the parked pool.
// Empty drafts are discarded: parking requires at least one item.
func (e *Engine) parkCurrent() {
	if e.current != nil && len(e.current.Items) > 0 {
		e.current.Status = StatusParked
		e.parked = append(e.parked, *e.current)
	}
	e.current = nil
}

// ── Cart operations ──────────────────────────────────────────────────────────

// StartNewSale opens a fresh empty draft for the active cashier. A current
// draft that already holds items is parked first, preserving the invariant
// that at most one draft sale is active at a time.
func (e *Engine) StartNewSale(ctx context.Context) (*Sale, error) {
	sale, err := e.newDraft()
	if err != nil {
		return nil, err
	}
	e.parkCurrent()
	e.current = sale
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return sale.clone(), nil
}

// AddToCart adds quantity units of product to the current draft, creating
// the draft if none exists. Adding a product already in the cart increments
// its line item instead of appending a second one.
func (e *Engine) AddToCart(ctx context.Context, product Product, quantity int) (*Sale, error) {
	if quantity < 1 {
		quantity = 1
	}
	if e.current == nil {
		sale, err := e.newDraft()
		if err != nil {
			return nil, err
		}
		e.current = sale
	}
	if idx := e.current.itemIndex(product.ID); idx >= 0 {
		e.current.Items[idx].Quantity += quantity
	} else {
		e.current.Items = append(e.current.Items, LineItem{Product: product, Quantity: quantity})
	}
	e.current.recalculate()
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return e.current.clone(), nil
}

// UpdateQuantity sets a line item's quantity exactly (not additive). A
// quantity of zero or less removes the line item. Absent draft or product
// is a silent no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if e.current == nil {
		return nil
	}
	if quantity <= 0 {
		return e.RemoveFromCart(ctx, productID)
	}
	idx := e.current.itemIndex(productID)
	if idx < 0 {
		return nil
	}
	e.current.Items[idx].Quantity = quantity
	e.current.recalculate()
	return e.persist(ctx)
}

// RemoveFromCart deletes the line item for productID if present.
func (e *Engine) RemoveFromCart(ctx context.Context, productID string) error {
	if e.current == nil {
		return nil
	}
	idx := e.current.itemIndex(productID)
	if idx < 0 {
		return nil
	}
	e.current.Items = append(e.current.Items[:idx], e.current.Items[idx+1:]...)
	e.current.recalculate()
	return e.persist(ctx)
}

// ApplyItemDiscount sets the percentage discount on a line item, clamped
// to [0, 100]. Absent draft or product is a silent no-op.
func (e *Engine) ApplyItemDiscount(ctx context.Context, productID string, pct decimal.Decimal) error {
	if e.current == nil {
		return nil
	}
	idx := e.current.itemIndex(productID)
	if idx < 0 {
		return nil
	}
	e.current.Items[idx].Discount = ClampDiscount(pct)
	e.current.recalculate()
	return e.persist(ctx)
}

// ClearCart empties the current draft's line items and resets the derived
// totals. Customer name and note are retained.
func (e *Engine) ClearCart(ctx context.Context) error {
	if e.current == nil {
		return nil
	}
	e.current.Items = nil
	e.current.recalculate()
	return e.persist(ctx)
}

// SetCustomerName attaches a customer name to the current draft.
func (e *Engine) SetCustomerName(ctx context.Context, name string) error {
	if e.current == nil {
		return nil
	}
	e.current.CustomerName = name
	return e.persist(ctx)
}

// SetSaleNote attaches a free-form note to the current draft.
func (e *Engine) SetSaleNote(ctx context.Context, note string) error {
	if e.current == nil {
		return nil
	}
	e.current.Note = note
	return e.persist(ctx)
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// ParkSale suspends the current draft into the parked pool and frees the
// register. A missing or empty draft is a silent no-op: only sales with at
// least one item can be parked.
func (e *Engine) ParkSale(ctx context.Context) error {
	if e.current == nil || len(e.current.Items) == 0 {
		return nil
	}
	e.parkCurrent()
	return e.persist(ctx)
}

// ResumeSale promotes a parked sale back to the active draft. If another
// draft with items is active it is parked first, so at most one draft ever
// exists across the current slot and the pool.
func (e *Engine) ResumeSale(ctx context.Context, saleID string) (*Sale, error) {
	idx := -1
	for i := range e.parked {
		if e.parked[i].ID == saleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("parked sale %s: %w", saleID, ErrNotFound)
	}
	target := e.parked[idx]
	e.parked = append(e.parked[:idx], e.parked[idx+1:]...)
	e.parkCurrent()
	target.Status = StatusDraft
	e.current = &target
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return e.current.clone(), nil
}

// CompleteSale finalizes the current draft: it stamps the completion time,
// attaches the payment set, assigns a receipt number, archives the sale
// into the history ledger and clears the current-sale slot. This is a
// single atomic step; there is no pending state between payment and
// finalization.
func (e *Engine) CompleteSale(ctx context.Context, payments []Payment) (*Sale, error) {
	if e.current == nil || len(e.current.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if len(payments) == 0 {
		return nil, errors.New("at least one payment is required")
	}
	now := time.Now().UTC()
	sale := e.current
	sale.Status = StatusCompleted
	sale.Payments = append([]Payment(nil), payments...)
	sale.CompletedAt = &now
	sale.ReceiptNumber = e.receipts.Next(now)
	e.ledger.Append(*sale)
	e.current = nil
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return sale.clone(), nil
}

// VoidCurrentSale abandons the current draft. A draft with items is
// archived into the ledger as voided; an empty draft is discarded
// silently. Either way the current-sale slot ends up empty.
func (e *Engine) VoidCurrentSale(ctx context.Context) error {
	if e.current == nil {
		return nil
	}
	if len(e.current.Items) > 0 {
		now := time.Now().UTC()
		e.current.Status = StatusVoided
		e.current.CompletedAt = &now
		e.ledger.Append(*e.current)
	}
	e.current = nil
	return e.persist(ctx)
}

// RefundSale transitions a completed sale in the ledger to refunded.
// The reason is mandatory; the original items, totals and payments are
// preserved unchanged.
func (e *Engine) RefundSale(ctx context.Context, saleID, reason string) (*Sale, error) {
	sale, err := e.ledger.Refund(saleID, reason)
	if err != nil {
		return nil, err
	}
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return sale, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

// CurrentSale returns a copy of the active draft, or nil if the register
// is free.
func (e *Engine) CurrentSale() *Sale {
	return e.current.clone()
}

// ParkedSales returns copies of the parked pool in park order.
func (e *Engine) ParkedSales() []Sale {
	out := make([]Sale, 0, len(e.parked))
	for i := range e.parked {
		out = append(out, *e.parked[i].clone())
	}
	return out
}

// History returns the full archived history, most recent first.
func (e *Engine) History() []Sale {
	return e.ledger.All()
}

// SalesByStatus returns archived sales filtered by status.
func (e *Engine) SalesByStatus(status SaleStatus) []Sale {
	return e.ledger.ByStatus(status)
}

// FindSale looks up a sale by id across every state: the current draft,
// the parked pool and the history ledger, in that order.
func (e *Engine) FindSale(saleID string) (*Sale, bool) {
	if e.current != nil && e.current.ID == saleID {
		return e.current.clone(), true
	}
	for i := range e.parked {
		if e.parked[i].ID == saleID {
			return e.parked[i].clone(), true
		}
	}
	return e.ledger.ByID(saleID)
}
