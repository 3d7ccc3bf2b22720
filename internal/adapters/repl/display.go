package repl

import (
	"fmt"
	"strings"

	"celtis-pos/internal/app"
	"celtis-pos/internal/core"

	"github.com/shopspring/decimal"
)

// money formats a currency amount with the 3 minor-unit digits of the
// operating currency. Rounding happens here and only here.
func money(d decimal.Decimal) string {
	return d.StringFixed(3)
}

func printCashiers(result *app.CashierListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 48))
	fmt.Println("  CASHIERS")
	fmt.Println(strings.Repeat("=", 48))
	for _, c := range result.Cashiers {
		fmt.Printf("  %-10s %s\n", c.ID, c.Name)
	}
	fmt.Println(strings.Repeat("=", 48))
}

func printProducts(result *app.ProductListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  PRODUCTS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Products) == 0 {
		fmt.Println("  No products found.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-10s %-28s %-14s %10s %6s\n", "SKU", "NAME", "CATEGORY", "PRICE", "STOCK")
	fmt.Println(strings.Repeat("-", 72))
	for _, p := range result.Products {
		fmt.Printf("  %-10s %-28s %-14s %10s %6d\n", p.SKU, p.Name, p.Category, money(p.Price), p.Stock)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printCart(result *app.CartResult) {
	sale := result.Sale
	if sale == nil {
		fmt.Println("Register is free, no active sale.")
		return
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  CURRENT SALE  %s\n", sale.ID)
	if sale.CustomerName != "" {
		fmt.Printf("  Customer: %s\n", sale.CustomerName)
	}
	if sale.Note != "" {
		fmt.Printf("  Note: %s\n", sale.Note)
	}
	fmt.Println(strings.Repeat("=", 72))
	if len(sale.Items) == 0 {
		fmt.Println("  Cart is empty.")
	} else {
		fmt.Printf("  %-10s %-26s %4s %10s %6s %10s\n", "SKU", "NAME", "QTY", "PRICE", "DISC", "TOTAL")
		fmt.Println(strings.Repeat("-", 72))
		for _, it := range sale.Items {
			disc := ""
			if !it.Discount.IsZero() {
				disc = it.Discount.StringFixed(0) + "%"
			}
			fmt.Printf("  %-10s %-26s %4d %10s %6s %10s\n",
				it.Product.SKU, it.Product.Name, it.Quantity, money(it.Product.Price), disc, money(it.Net()))
		}
	}
	fmt.Println(strings.Repeat("-", 72))
	printTotals(sale)
	fmt.Println(strings.Repeat("=", 72))
}

func printTotals(sale *core.Sale) {
	fmt.Printf("  %58s %11s\n", "Subtotal:", money(sale.Subtotal))
	if !sale.Discount.IsZero() {
		fmt.Printf("  %58s %11s\n", "Discount:", "-"+money(sale.Discount))
	}
	fmt.Printf("  %58s %11s\n", "Tax (16%):", money(sale.Tax))
	fmt.Printf("  %58s %11s\n", "TOTAL:", money(sale.Total))
}

func printParked(result *app.ParkedListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  PARKED SALES")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Sales) == 0 {
		fmt.Println("  No parked sales.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-38s %6s %11s  %s\n", "ID", "ITEMS", "TOTAL", "CUSTOMER")
	fmt.Println(strings.Repeat("-", 72))
	for i := range result.Sales {
		s := &result.Sales[i]
		fmt.Printf("  %-38s %6d %11s  %s\n", s.ID, s.ItemCount(), money(s.Total), s.CustomerName)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printHistory(result *app.HistoryResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  SALES HISTORY (most recent first)")
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Sales) == 0 {
		fmt.Println("  No sales on record.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-16s %-10s %-38s %11s\n", "RECEIPT", "STATUS", "ID", "TOTAL")
	fmt.Println(strings.Repeat("-", 78))
	for i := range result.Sales {
		s := &result.Sales[i]
		receipt := s.ReceiptNumber
		if receipt == "" {
			receipt = "-"
		}
		fmt.Printf("  %-16s %-10s %-38s %11s\n", receipt, s.Status, s.ID, money(s.Total))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printSaleDetail(sale *core.Sale) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  SALE %s\n", sale.ID)
	fmt.Printf("  Status   : %s\n", sale.Status)
	fmt.Printf("  Cashier  : %s\n", sale.CashierID)
	fmt.Printf("  Created  : %s\n", sale.CreatedAt.Format("2006-01-02 15:04:05"))
	if sale.ReceiptNumber != "" {
		fmt.Printf("  Receipt  : %s\n", sale.ReceiptNumber)
	}
	if sale.CompletedAt != nil {
		fmt.Printf("  Closed   : %s\n", sale.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	if sale.CustomerName != "" {
		fmt.Printf("  Customer : %s\n", sale.CustomerName)
	}
	if sale.Note != "" {
		fmt.Printf("  Note     : %s\n", sale.Note)
	}
	if sale.Status == core.StatusRefunded && sale.RefundedAt != nil {
		fmt.Printf("  Refunded : %s (%s)\n", sale.RefundedAt.Format("2006-01-02 15:04:05"), sale.RefundReason)
	}
	fmt.Println(strings.Repeat("-", 72))
	for _, it := range sale.Items {
		disc := ""
		if !it.Discount.IsZero() {
			disc = fmt.Sprintf(" (-%s%%)", it.Discount.StringFixed(0))
		}
		fmt.Printf("  %3d x %-30s %10s%s = %s\n",
			it.Quantity, it.Product.Name, money(it.Product.Price), disc, money(it.Net()))
	}
	fmt.Println(strings.Repeat("-", 72))
	printTotals(sale)
	for _, p := range sale.Payments {
		fmt.Printf("  %58s %11s\n", strings.ToUpper(string(p.Method))+":", money(p.Amount))
	}
	fmt.Println(strings.Repeat("=", 72))
}

// printReceipt renders the customer-facing receipt after completion.
func printReceipt(sale *core.Sale, change decimal.Decimal) {
	fmt.Println()
	fmt.Println(strings.Repeat("*", 44))
	fmt.Printf("  %s\n", sale.ReceiptNumber)
	if sale.CompletedAt != nil {
		fmt.Printf("  %s\n", sale.CompletedAt.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Println(strings.Repeat("-", 44))
	for _, it := range sale.Items {
		fmt.Printf("  %3d x %-22s %12s\n", it.Quantity, it.Product.Name, money(it.Net()))
	}
	fmt.Println(strings.Repeat("-", 44))
	fmt.Printf("  %-28s %12s\n", "Subtotal", money(sale.Subtotal))
	if !sale.Discount.IsZero() {
		fmt.Printf("  %-28s %12s\n", "Discount", "-"+money(sale.Discount))
	}
	fmt.Printf("  %-28s %12s\n", "Tax", money(sale.Tax))
	fmt.Printf("  %-28s %12s\n", "TOTAL", money(sale.Total))
	for _, p := range sale.Payments {
		fmt.Printf("  %-28s %12s\n", strings.ToUpper(string(p.Method)), money(p.Amount))
	}
	if change.IsPositive() {
		fmt.Printf("  %-28s %12s\n", "CHANGE", money(change))
	}
	fmt.Println(strings.Repeat("*", 44))
	fmt.Println("  Thank you for shopping with us!")
	fmt.Println(strings.Repeat("*", 44))
}

func printReport(r *core.SalesReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println("  SALES REPORT")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-30s %s\n", "Total revenue", money(r.TotalRevenue))
	fmt.Printf("  %-30s %d\n", "Transactions", r.TotalTransactions)
	fmt.Printf("  %-30s %s\n", "Average sale", money(r.AverageSale))
	fmt.Printf("  %-30s %d\n", "Items sold", r.ItemsSold)
	fmt.Printf("  %-30s %s (%d tx)\n", "Today", money(r.TodayRevenue), r.TodayTransactions)
	fmt.Printf("  %-30s %s\n", "Last 7 days", money(r.WeekRevenue))
	fmt.Printf("  %-30s %d (%s)\n", "Refunds", r.RefundCount, money(r.RefundAmount))
	fmt.Printf("  %-30s %d\n", "Voided", r.VoidCount)
	fmt.Println(strings.Repeat("-", 62))
	fmt.Printf("  %-30s %s\n", "Cash payments", money(r.CashTotal))
	fmt.Printf("  %-30s %s\n", "Card payments", money(r.CardTotal))
	if len(r.TopProducts) > 0 {
		fmt.Println(strings.Repeat("-", 62))
		fmt.Println("  TOP PRODUCTS")
		for _, p := range r.TopProducts {
			fmt.Printf("    %-28s %5d units %12s\n", p.Name, p.UnitsSold, money(p.Revenue))
		}
	}
	if len(r.CategoryRevenue) > 0 {
		fmt.Println(strings.Repeat("-", 62))
		fmt.Println("  REVENUE BY CATEGORY")
		for _, c := range r.CategoryRevenue {
			fmt.Printf("    %-28s %12s\n", c.Category, money(c.Revenue))
		}
	}
	fmt.Println(strings.Repeat("=", 62))
}
