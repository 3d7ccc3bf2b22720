package app_test

import (
	"context"
	"testing"

	"celtis-pos/internal/app"
	"celtis-pos/internal/catalog"
	"celtis-pos/internal/core"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) app.ApplicationService {
	t.Helper()
	cat := catalog.New([]core.Product{
		{ID: "prod-001", Name: "Mineral Water 1.5L", SKU: "BEV-001", Price: d("0.350"), Category: "Beverages", Barcode: "6251001000011"},
		{ID: "prod-002", Name: "Chocolate Bar 90g", SKU: "SNK-003", Price: d("0.650"), Category: "Snacks"},
	})
	dir := catalog.NewDirectory([]core.Cashier{
		{ID: "cash-001", Name: "Ahmad Ali", PIN: "1234"},
	})
	engine := core.NewEngine(nil, nil)
	return app.NewAppService(engine, cat, dir)
}

func login(t *testing.T, svc app.ApplicationService) {
	t.Helper()
	if _, err := svc.Login(context.Background(), "cash-001", "1234"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
}

func TestAppService_Login(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "cash-001", "0000"); err == nil {
		t.Error("wrong PIN should fail")
	}
	if _, err := svc.ActiveCashier(); err == nil {
		t.Error("no session should be active after failed login")
	}

	res, err := svc.Login(ctx, "cash-001", "1234")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if res.Cashier.Name != "Ahmad Ali" {
		t.Errorf("cashier = %+v", res.Cashier)
	}

	active, err := svc.ActiveCashier()
	if err != nil {
		t.Fatalf("ActiveCashier failed: %v", err)
	}
	if active.Cashier.ID != "cash-001" {
		t.Errorf("active cashier = %s", active.Cashier.ID)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.ActiveCashier(); err == nil {
		t.Error("session should be cleared after logout")
	}
}

func TestAppService_ListCashiers_HidesPINs(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.ListCashiers()
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range res.Cashiers {
		if c.PIN != "" {
			t.Errorf("cashier %s PIN leaked through listing", c.ID)
		}
	}
}

func TestAppService_AddToCart_ResolvesReferences(t *testing.T) {
	svc := newTestService(t)
	login(t, svc)
	ctx := context.Background()

	// By SKU.
	cart, err := svc.AddToCart(ctx, "bev-001", 2)
	if err != nil {
		t.Fatalf("add by SKU failed: %v", err)
	}
	if cart.ItemCount != 2 {
		t.Errorf("item count = %d, want 2", cart.ItemCount)
	}

	// By barcode merges into the same line.
	cart, err = svc.AddToCart(ctx, "6251001000011", 1)
	if err != nil {
		t.Fatalf("add by barcode failed: %v", err)
	}
	if len(cart.Sale.Items) != 1 || cart.ItemCount != 3 {
		t.Errorf("expected one merged line with 3 units, got %d lines / %d units",
			len(cart.Sale.Items), cart.ItemCount)
	}

	// Unknown reference is an error at the facade.
	if _, err := svc.AddToCart(ctx, "no-such-product", 1); err == nil {
		t.Error("unknown product reference should fail")
	}
}

func TestAppService_CompleteSale_ValidatesPayments(t *testing.T) {
	svc := newTestService(t)
	login(t, svc)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "SNK-003", 1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		payments []app.PaymentInput
	}{
		{"Unknown method", []app.PaymentInput{{Method: "cheque", Amount: d("1")}}},
		{"Zero amount", []app.PaymentInput{{Method: "cash", Amount: d("0")}}},
		{"Negative amount", []app.PaymentInput{{Method: "card", Amount: d("-1")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CompleteSale(ctx, app.CompleteSaleRequest{Payments: tt.payments}); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Valid payment completes the sale.
	cart, err := svc.CurrentCart()
	if err != nil {
		t.Fatal(err)
	}
	res, err := svc.CompleteSale(ctx, app.CompleteSaleRequest{
		Payments: []app.PaymentInput{{Method: "cash", Amount: cart.Sale.Total}},
	})
	if err != nil {
		t.Fatalf("CompleteSale failed: %v", err)
	}
	if res.Sale.Status != core.StatusCompleted {
		t.Errorf("status = %s", res.Sale.Status)
	}
}

func TestAppService_FullSaleFlow(t *testing.T) {
	svc := newTestService(t)
	login(t, svc)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "BEV-001", 3); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ApplyItemDiscount(ctx, "BEV-001", d("10")); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetCustomer(ctx, "Walk-in"); err != nil {
		t.Fatal(err)
	}

	// Park, verify listing, resume.
	if err := svc.ParkSale(ctx); err != nil {
		t.Fatal(err)
	}
	parked, err := svc.ListParked()
	if err != nil {
		t.Fatal(err)
	}
	if len(parked.Sales) != 1 {
		t.Fatalf("parked = %d, want 1", len(parked.Sales))
	}
	cart, err := svc.ResumeSale(ctx, parked.Sales[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Sale.CustomerName != "Walk-in" {
		t.Errorf("customer lost: %q", cart.Sale.CustomerName)
	}

	// Complete and refund.
	res, err := svc.CompleteSale(ctx, app.CompleteSaleRequest{
		Payments: []app.PaymentInput{{Method: "card", Amount: cart.Sale.Total}},
	})
	if err != nil {
		t.Fatal(err)
	}
	refunded, err := svc.RefundSale(ctx, res.Sale.ID, "customer returned items")
	if err != nil {
		t.Fatalf("RefundSale failed: %v", err)
	}
	if refunded.Sale.Status != core.StatusRefunded {
		t.Errorf("status = %s", refunded.Sale.Status)
	}

	// History filter.
	hist, err := svc.History("refunded")
	if err != nil {
		t.Fatal(err)
	}
	if len(hist.Sales) != 1 {
		t.Errorf("refunded history = %d, want 1", len(hist.Sales))
	}
	if _, err := svc.History("bogus"); err == nil {
		t.Error("unknown status filter should fail")
	}

	// Report reflects the refund.
	rep, err := svc.Report()
	if err != nil {
		t.Fatal(err)
	}
	if rep.Report.RefundCount != 1 || rep.Report.TotalTransactions != 0 {
		t.Errorf("report = %+v", rep.Report)
	}
}

func TestAppService_GetSale_NotFound(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.GetSale("missing"); err == nil {
		t.Error("expected error for unknown sale id")
	}
}
