package core_test

import (
	"errors"
	"testing"
	"time"

	"celtis-pos/internal/core"
)

func completedSale(id string) core.Sale {
	now := time.Now().UTC()
	s := core.Sale{
		ID:     id,
		Status: core.StatusCompleted,
		Items: []core.LineItem{
			item("p1", "2.000", 1, "0"),
		},
		Payments:    []core.Payment{{Method: core.PaymentCash, Amount: d("2.320")}},
		CompletedAt: &now,
	}
	return s
}

func TestLedger_Refund(t *testing.T) {
	l := core.NewLedger(nil)
	l.Append(completedSale("s1"))

	sale, err := l.Refund("s1", "damaged item")
	if err != nil {
		t.Fatalf("Refund failed: %v", err)
	}
	if sale.Status != core.StatusRefunded {
		t.Errorf("status = %s, want %s", sale.Status, core.StatusRefunded)
	}
	if sale.RefundedAt == nil {
		t.Error("RefundedAt not stamped")
	}
	if sale.RefundReason != "damaged item" {
		t.Errorf("reason = %q", sale.RefundReason)
	}
	// Original data preserved.
	if len(sale.Items) != 1 || len(sale.Payments) != 1 {
		t.Errorf("items/payments altered by refund: %+v", sale)
	}
}

func TestLedger_Refund_RequiresReason(t *testing.T) {
	l := core.NewLedger(nil)
	l.Append(completedSale("s1"))

	for _, reason := range []string{"", "   "} {
		if _, err := l.Refund("s1", reason); err == nil {
			t.Errorf("Refund with reason %q should fail", reason)
		}
	}
	// The rejected attempts must not have mutated the sale.
	if sale, _ := l.ByID("s1"); sale.Status != core.StatusCompleted {
		t.Errorf("sale status changed by rejected refund: %s", sale.Status)
	}
}

func TestLedger_Refund_OnlyCompleted(t *testing.T) {
	l := core.NewLedger(nil)
	voided := completedSale("s1")
	voided.Status = core.StatusVoided
	l.Append(voided)

	_, err := l.Refund("s1", "wrong charge")
	if !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestLedger_Refund_Twice(t *testing.T) {
	l := core.NewLedger(nil)
	l.Append(completedSale("s1"))

	if _, err := l.Refund("s1", "first"); err != nil {
		t.Fatal(err)
	}
	_, err := l.Refund("s1", "second")
	if !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("second refund should fail with ErrInvalidTransition, got %v", err)
	}
}

func TestLedger_Refund_Unknown(t *testing.T) {
	l := core.NewLedger(nil)
	_, err := l.Refund("missing", "reason")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLedger_Ordering(t *testing.T) {
	l := core.NewLedger(nil)
	l.Append(completedSale("first"))
	l.Append(completedSale("second"))
	l.Append(completedSale("third"))

	all := l.All()
	if len(all) != 3 {
		t.Fatalf("length = %d, want 3", len(all))
	}
	want := []string{"third", "second", "first"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("all[%d].ID = %s, want %s (most recent first)", i, all[i].ID, id)
		}
	}
}

func TestLedger_ByStatus(t *testing.T) {
	l := core.NewLedger(nil)
	l.Append(completedSale("s1"))
	l.Append(completedSale("s2"))
	if _, err := l.Refund("s1", "reason"); err != nil {
		t.Fatal(err)
	}

	if got := len(l.ByStatus(core.StatusCompleted)); got != 1 {
		t.Errorf("completed count = %d, want 1", got)
	}
	if got := len(l.ByStatus(core.StatusRefunded)); got != 1 {
		t.Errorf("refunded count = %d, want 1", got)
	}
	if got := len(l.ByStatus(core.StatusVoided)); got != 0 {
		t.Errorf("voided count = %d, want 0", got)
	}
}
