package core

import "errors"

// Lifecycle precondition violations are returned as errors; mutations
// addressed at entities that do not exist (removing a product not in the
// cart, updating an absent line) are silent no-ops; they reflect benign
// UI races, not programming errors. Nothing here is fatal to the process.
var (
	// ErrNoActiveCashier: a sale would be created or completed with no session context set.
	ErrNoActiveCashier = errors.New("no active cashier")

	// ErrEmptyCart: checkout or park attempted with zero line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidTransition: an operation targeted a sale whose status forbids it.
	ErrInvalidTransition = errors.New("invalid sale status transition")

	// ErrNotFound: a referenced sale id does not exist.
	ErrNotFound = errors.New("sale not found")
)
