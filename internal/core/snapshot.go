package core

import "context"

// Snapshot is the entire engine state as one JSON-serializable document.
// Save followed by Load must reproduce it under structural equality.
type Snapshot struct {
	CurrentSale *Sale          `json:"current_sale,omitempty"`
	ParkedSales []Sale         `json:"parked_sales"`
	Sales       []Sale         `json:"sales"`
	Cashier     *Cashier       `json:"cashier,omitempty"`
	Receipts    ReceiptCounter `json:"receipts"`
}

// Store persists the engine snapshot after every mutating operation.
// Implementations live in internal/store; the engine has no dependency on
// any specific storage medium.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
