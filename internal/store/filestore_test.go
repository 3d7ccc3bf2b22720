package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"celtis-pos/internal/core"
	"celtis-pos/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *core.Snapshot {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sale := core.Sale{
		ID:     "sale-1",
		Status: core.StatusCompleted,
		Items: []core.LineItem{
			{
				Product: core.Product{
					ID: "p1", Name: "Mineral Water 1.5L", SKU: "BEV-001",
					Price: decimal.RequireFromString("0.350"), Category: "Beverages", Stock: 120,
				},
				Quantity: 3,
				Discount: decimal.Zero,
			},
		},
		Subtotal:      decimal.RequireFromString("1.050"),
		Discount:      decimal.Zero,
		Tax:           decimal.RequireFromString("0.168"),
		Total:         decimal.RequireFromString("1.218"),
		Payments:      []core.Payment{{Method: core.PaymentCash, Amount: decimal.RequireFromString("1.218")}},
		CashierID:     "cash-001",
		CreatedAt:     now,
		CompletedAt:   &now,
		ReceiptNumber: "RCP-20260315-0001",
	}
	return &core.Snapshot{
		Sales:    []core.Sale{sale},
		Cashier:  &core.Cashier{ID: "cash-001", Name: "Ahmad Ali", PIN: "1234"},
		Receipts: core.ReceiptCounter{Day: "20260315", Seq: 1},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "pos-state.json")
	fs := store.NewFileStore(path)
	ctx := context.Background()

	original := sampleSnapshot()
	require.NoError(t, fs.Save(ctx, original))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)

	require.Len(t, loaded.Sales, 1)
	assert.Equal(t, "sale-1", loaded.Sales[0].ID)
	assert.Equal(t, core.StatusCompleted, loaded.Sales[0].Status)
	assert.True(t, loaded.Sales[0].Total.Equal(original.Sales[0].Total))
	assert.Equal(t, "RCP-20260315-0001", loaded.Sales[0].ReceiptNumber)
	require.NotNil(t, loaded.Cashier)
	assert.Equal(t, "cash-001", loaded.Cashier.ID)
	assert.Equal(t, core.ReceiptCounter{Day: "20260315", Seq: 1}, loaded.Receipts)

	// Serializing the loaded snapshot must reproduce the original document.
	originalJSON, err := json.Marshal(original)
	require.NoError(t, err)
	loadedJSON, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(originalJSON), string(loadedJSON))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	snap, err := fs.Load(context.Background())
	require.NoError(t, err, "a missing state file is a fresh terminal, not an error")
	assert.Nil(t, snap.CurrentSale)
	assert.Empty(t, snap.Sales)
	assert.Empty(t, snap.ParkedSales)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos-state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos-state.json")
	fs := store.NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, sampleSnapshot()))
	require.NoError(t, fs.Save(ctx, &core.Snapshot{Receipts: core.ReceiptCounter{Day: "20260316", Seq: 4}}))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Sales)
	assert.Equal(t, 4, loaded.Receipts.Seq)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
