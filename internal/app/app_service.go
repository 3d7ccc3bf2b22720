package app

import (
	"context"
	"fmt"
	"time"

	"celtis-pos/internal/catalog"
	"celtis-pos/internal/core"

	"github.com/shopspring/decimal"
)

type appService struct {
	engine    *core.Engine
	catalog   *catalog.Catalog
	directory *catalog.Directory
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(engine *core.Engine, cat *catalog.Catalog, dir *catalog.Directory) ApplicationService {
	return &appService{engine: engine, catalog: cat, directory: dir}
}

// ── Session ──────────────────────────────────────────────────────────────────

func (s *appService) Login(ctx context.Context, cashierID, pin string) (*CashierResult, error) {
	cashier, ok := s.directory.VerifyPIN(cashierID, pin)
	if !ok {
		return nil, fmt.Errorf("invalid cashier id or PIN")
	}
	if err := s.engine.SetCashier(ctx, cashier); err != nil {
		return nil, err
	}
	return &CashierResult{Cashier: cashier}, nil
}

func (s *appService) Logout(ctx context.Context) error {
	return s.engine.ClearCashier(ctx)
}

func (s *appService) ActiveCashier() (*CashierResult, error) {
	cashier, ok := s.engine.ActiveCashier()
	if !ok {
		return nil, core.ErrNoActiveCashier
	}
	return &CashierResult{Cashier: cashier}, nil
}

func (s *appService) ListCashiers() (*CashierListResult, error) {
	cashiers := s.directory.Cashiers()
	for i := range cashiers {
		cashiers[i].PIN = ""
	}
	return &CashierListResult{Cashiers: cashiers}, nil
}

// ── Catalog ──────────────────────────────────────────────────────────────────

func (s *appService) ListProducts(category string) (*ProductListResult, error) {
	if category == "" {
		return &ProductListResult{Products: s.catalog.Products()}, nil
	}
	return &ProductListResult{Products: s.catalog.ByCategory(category)}, nil
}

func (s *appService) SearchProducts(query string) (*ProductListResult, error) {
	return &ProductListResult{Products: s.catalog.Search(query)}, nil
}

func (s *appService) ListCategories() ([]string, error) {
	return s.catalog.Categories(), nil
}

// resolveProductID maps a user-entered reference to a product id. Refs not
// found in the catalog pass through unchanged: the engine treats unknown
// ids in cart-targeting operations as benign no-ops.
func (s *appService) resolveProductID(ref string) string {
	if p, ok := s.catalog.Lookup(ref); ok {
		return p.ID
	}
	return ref
}

func (s *appService) cartResult() *CartResult {
	sale := s.engine.CurrentSale()
	res := &CartResult{Sale: sale}
	if sale != nil {
		res.ItemCount = sale.ItemCount()
	}
	return res
}

// ── Cart ─────────────────────────────────────────────────────────────────────

func (s *appService) CurrentCart() (*CartResult, error) {
	return s.cartResult(), nil
}

func (s *appService) StartNewSale(ctx context.Context) (*CartResult, error) {
	if _, err := s.engine.StartNewSale(ctx); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) AddToCart(ctx context.Context, ref string, quantity int) (*CartResult, error) {
	product, ok := s.catalog.Lookup(ref)
	if !ok {
		return nil, fmt.Errorf("product %q not found in catalog", ref)
	}
	if _, err := s.engine.AddToCart(ctx, product, quantity); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) UpdateQuantity(ctx context.Context, ref string, quantity int) (*CartResult, error) {
	if err := s.engine.UpdateQuantity(ctx, s.resolveProductID(ref), quantity); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) RemoveFromCart(ctx context.Context, ref string) (*CartResult, error) {
	if err := s.engine.RemoveFromCart(ctx, s.resolveProductID(ref)); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) ApplyItemDiscount(ctx context.Context, ref string, pct decimal.Decimal) (*CartResult, error) {
	if err := s.engine.ApplyItemDiscount(ctx, s.resolveProductID(ref), pct); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) ClearCart(ctx context.Context) (*CartResult, error) {
	if err := s.engine.ClearCart(ctx); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) SetCustomer(ctx context.Context, name string) error {
	return s.engine.SetCustomerName(ctx, name)
}

func (s *appService) SetNote(ctx context.Context, note string) error {
	return s.engine.SetSaleNote(ctx, note)
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

func (s *appService) ParkSale(ctx context.Context) error {
	return s.engine.ParkSale(ctx)
}

func (s *appService) ListParked() (*ParkedListResult, error) {
	return &ParkedListResult{Sales: s.engine.ParkedSales()}, nil
}

func (s *appService) ResumeSale(ctx context.Context, saleID string) (*CartResult, error) {
	if _, err := s.engine.ResumeSale(ctx, saleID); err != nil {
		return nil, err
	}
	return s.cartResult(), nil
}

func (s *appService) CompleteSale(ctx context.Context, req CompleteSaleRequest) (*SaleResult, error) {
	payments := make([]core.Payment, 0, len(req.Payments))
	for i, p := range req.Payments {
		method := core.PaymentMethod(p.Method)
		if method != core.PaymentCash && method != core.PaymentCard {
			return nil, fmt.Errorf("payment %d: unknown method %q (must be cash or card)", i+1, p.Method)
		}
		if p.Amount.IsNegative() || p.Amount.IsZero() {
			return nil, fmt.Errorf("payment %d: amount must be > 0", i+1)
		}
		payments = append(payments, core.Payment{Method: method, Amount: p.Amount})
	}
	sale, err := s.engine.CompleteSale(ctx, payments)
	if err != nil {
		return nil, err
	}
	return &SaleResult{Sale: sale}, nil
}

func (s *appService) VoidSale(ctx context.Context) error {
	return s.engine.VoidCurrentSale(ctx)
}

func (s *appService) RefundSale(ctx context.Context, saleID, reason string) (*SaleResult, error) {
	sale, err := s.engine.RefundSale(ctx, saleID, reason)
	if err != nil {
		return nil, err
	}
	return &SaleResult{Sale: sale}, nil
}

// ── History & reporting ──────────────────────────────────────────────────────

func parseStatus(s string) (core.SaleStatus, error) {
	switch core.SaleStatus(s) {
	case core.StatusDraft, core.StatusParked, core.StatusCompleted, core.StatusVoided, core.StatusRefunded:
		return core.SaleStatus(s), nil
	default:
		return "", fmt.Errorf("unknown sale status %q", s)
	}
}

func (s *appService) History(status string) (*HistoryResult, error) {
	if status == "" {
		return &HistoryResult{Sales: s.engine.History()}, nil
	}
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	return &HistoryResult{Sales: s.engine.SalesByStatus(st)}, nil
}

func (s *appService) GetSale(saleID string) (*SaleResult, error) {
	sale, ok := s.engine.FindSale(saleID)
	if !ok {
		return nil, fmt.Errorf("sale %s: %w", saleID, core.ErrNotFound)
	}
	return &SaleResult{Sale: sale}, nil
}

func (s *appService) Report() (*ReportResult, error) {
	report := core.BuildSalesReport(s.engine.History(), time.Now().UTC())
	return &ReportResult{Report: report}, nil
}
