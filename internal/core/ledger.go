package core

import (
	"fmt"
	"strings"
	"time"
)

// Ledger is the append-only history of finalized sales (completed, voided
// or refunded), ordered most-recent-first for display. Once a sale is
// appended the ledger owns it; the only in-place mutation ever applied is
// the completed → refunded transition.
type Ledger struct {
	sales []Sale
}

// NewLedger restores a ledger from previously archived sales
// (most-recent-first, as serialized in the snapshot).
func NewLedger(sales []Sale) *Ledger {
	return &Ledger{sales: append([]Sale(nil), sales...)}
}

// Append archives a finalized sale at the front of the history.
func (l *Ledger) Append(s Sale) {
	l.sales = append([]Sale{s}, l.sales...)
}

// Refund transitions a completed sale to refunded, stamping the refund
// metadata in place. Items, totals and payments are preserved unchanged.
func (l *Ledger) Refund(id, reason string) (*Sale, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("refund %s: a reason is required", id)
	}
	for i := range l.sales {
		if l.sales[i].ID != id {
			continue
		}
		if l.sales[i].Status != StatusCompleted {
			return nil, fmt.Errorf("sale %s cannot be refunded: status is %s (must be %s): %w",
				id, l.sales[i].Status, StatusCompleted, ErrInvalidTransition)
		}
		now := time.Now().UTC()
		l.sales[i].Status = StatusRefunded
		l.sales[i].RefundedAt = &now
		l.sales[i].RefundReason = reason
		return l.sales[i].clone(), nil
	}
	return nil, fmt.Errorf("refund %s: %w", id, ErrNotFound)
}

// ByStatus returns archived sales with the given status, most recent first.
func (l *Ledger) ByStatus(status SaleStatus) []Sale {
	var out []Sale
	for i := range l.sales {
		if l.sales[i].Status == status {
			out = append(out, *l.sales[i].clone())
		}
	}
	return out
}

// ByID returns a copy of the archived sale with the given id.
func (l *Ledger) ByID(id string) (*Sale, bool) {
	for i := range l.sales {
		if l.sales[i].ID == id {
			return l.sales[i].clone(), true
		}
	}
	return nil, false
}

// All returns a copy of the full history, most recent first.
func (l *Ledger) All() []Sale {
	out := make([]Sale, 0, len(l.sales))
	for i := range l.sales {
		out = append(out, *l.sales[i].clone())
	}
	return out
}

// Len returns the number of archived sales.
func (l *Ledger) Len() int {
	return len(l.sales)
}
