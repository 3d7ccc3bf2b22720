package app

import "github.com/shopspring/decimal"

// PaymentInput is one tender line within a CompleteSaleRequest.
// Method must be "cash" or "card".
type PaymentInput struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// CompleteSaleRequest is the input for finalizing the current draft.
type CompleteSaleRequest struct {
	Payments []PaymentInput `json:"payments"`
}
