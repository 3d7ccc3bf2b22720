package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ── Report types ──────────────────────────────────────────────────────────────

// ProductSales is one product's aggregate in the top-products ranking.
// Revenue is gross (price × qty, before item discounts), matching the
// merchandising view rather than the accounting view.
type ProductSales struct {
	ProductID string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
}

// CategoryRevenue is gross revenue attributed to one product category.
type CategoryRevenue struct {
	Category string
	Revenue  decimal.Decimal
}

// SalesReport is the aggregate view over the history ledger backing the
// reports screen. Revenue figures count completed sales only; refunded
// sales are excluded from revenue and reported separately.
type SalesReport struct {
	TotalRevenue      decimal.Decimal
	TotalTransactions int
	AverageSale       decimal.Decimal
	ItemsSold         int

	TodayRevenue      decimal.Decimal
	TodayTransactions int
	// WeekRevenue covers the rolling 7 days ending at the report time.
	WeekRevenue decimal.Decimal

	RefundCount  int
	RefundAmount decimal.Decimal
	VoidCount    int

	CashTotal decimal.Decimal
	CardTotal decimal.Decimal

	TopProducts     []ProductSales    // by gross revenue, descending, max 5
	CategoryRevenue []CategoryRevenue // by gross revenue, descending
}

// topProductLimit bounds the top-products ranking.
const topProductLimit = 5

// BuildSalesReport aggregates archived sales into a SalesReport. now
// anchors the today/rolling-week windows (UTC days).
func BuildSalesReport(sales []Sale, now time.Time) SalesReport {
	r := SalesReport{}
	today := now.UTC().Truncate(24 * time.Hour)
	weekStart := now.UTC().Add(-7 * 24 * time.Hour)

	byProduct := make(map[string]*ProductSales)
	byCategory := make(map[string]decimal.Decimal)

	for i := range sales {
		s := &sales[i]
		switch s.Status {
		case StatusRefunded:
			r.RefundCount++
			r.RefundAmount = r.RefundAmount.Add(s.Total)
			continue
		case StatusVoided:
			r.VoidCount++
			continue
		case StatusCompleted:
		default:
			continue
		}

		r.TotalRevenue = r.TotalRevenue.Add(s.Total)
		r.TotalTransactions++
		r.ItemsSold += s.ItemCount()

		if s.CompletedAt != nil {
			completed := s.CompletedAt.UTC()
			if !completed.Before(today) {
				r.TodayRevenue = r.TodayRevenue.Add(s.Total)
				r.TodayTransactions++
			}
			if !completed.Before(weekStart) {
				r.WeekRevenue = r.WeekRevenue.Add(s.Total)
			}
		}

		for _, p := range s.Payments {
			switch p.Method {
			case PaymentCash:
				r.CashTotal = r.CashTotal.Add(p.Amount)
			case PaymentCard:
				r.CardTotal = r.CardTotal.Add(p.Amount)
			}
		}

		for _, it := range s.Items {
			ps, ok := byProduct[it.Product.ID]
			if !ok {
				ps = &ProductSales{ProductID: it.Product.ID, Name: it.Product.Name}
				byProduct[it.Product.ID] = ps
			}
			ps.UnitsSold += it.Quantity
			ps.Revenue = ps.Revenue.Add(it.Gross())

			byCategory[it.Product.Category] = byCategory[it.Product.Category].Add(it.Gross())
		}
	}

	if r.TotalTransactions > 0 {
		r.AverageSale = r.TotalRevenue.Div(decimal.NewFromInt(int64(r.TotalTransactions)))
	}

	for _, ps := range byProduct {
		r.TopProducts = append(r.TopProducts, *ps)
	}
	sort.Slice(r.TopProducts, func(i, j int) bool {
		if !r.TopProducts[i].Revenue.Equal(r.TopProducts[j].Revenue) {
			return r.TopProducts[i].Revenue.GreaterThan(r.TopProducts[j].Revenue)
		}
		return r.TopProducts[i].Name < r.TopProducts[j].Name
	})
	if len(r.TopProducts) > topProductLimit {
		r.TopProducts = r.TopProducts[:topProductLimit]
	}

	for cat, rev := range byCategory {
		r.CategoryRevenue = append(r.CategoryRevenue, CategoryRevenue{Category: cat, Revenue: rev})
	}
	sort.Slice(r.CategoryRevenue, func(i, j int) bool {
		if !r.CategoryRevenue[i].Revenue.Equal(r.CategoryRevenue[j].Revenue) {
			return r.CategoryRevenue[i].Revenue.GreaterThan(r.CategoryRevenue[j].Revenue)
		}
		return r.CategoryRevenue[i].Category < r.CategoryRevenue[j].Category
	})

	return r
}
