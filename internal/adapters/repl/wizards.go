package repl

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"celtis-pos/internal/app"

	"github.com/shopspring/decimal"
)

func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func confirm(reader *bufio.Reader, question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	answer, ok := readLine(reader)
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// handleLogin prompts for the cashier's PIN without echo suppression.
// PINs here are register codes, not secrets in the credential sense.
func handleLogin(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, cashierID string) {
	fmt.Print("PIN: ")
	pin, ok := readLine(reader)
	if !ok {
		return
	}
	result, err := svc.Login(ctx, cashierID, pin)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Signed in: %s (%s)\n", result.Cashier.Name, result.Cashier.ID)
}

// handlePay walks the cashier through tendering the current sale:
// cash (with change), card, or a cash+card split. Payments recorded on
// the sale always sum to the sale total; change is display-only.
func handlePay(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	cart, err := svc.CurrentCart()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if cart.Sale == nil || len(cart.Sale.Items) == 0 {
		fmt.Println("Nothing to pay: the cart is empty.")
		return
	}
	total := cart.Sale.Total
	fmt.Printf("Amount due: %s\n", money(total))
	fmt.Print("Payment method (cash/card/split): ")
	method, ok := readLine(reader)
	if !ok {
		return
	}

	var payments []app.PaymentInput
	change := decimal.Zero

	switch strings.ToLower(method) {
	case "cash", "":
		tendered, ok := promptCash(reader, total)
		if !ok {
			fmt.Println("Payment cancelled.")
			return
		}
		change = tendered.Sub(total)
		payments = []app.PaymentInput{{Method: "cash", Amount: total}}

	case "card":
		payments = []app.PaymentInput{{Method: "card", Amount: total}}

	case "split":
		fmt.Print("Cash portion: ")
		raw, ok := readLine(reader)
		if !ok {
			return
		}
		cash, err := decimal.NewFromString(raw)
		if err != nil || !cash.IsPositive() {
			fmt.Println("Invalid amount.")
			return
		}
		if cash.GreaterThanOrEqual(total) {
			fmt.Println("Cash portion covers the full amount, use cash instead.")
			return
		}
		card := total.Sub(cash)
		fmt.Printf("Card portion: %s\n", money(card))
		payments = []app.PaymentInput{
			{Method: "cash", Amount: cash},
			{Method: "card", Amount: card},
		}

	default:
		fmt.Printf("Unknown payment method %q.\n", method)
		return
	}

	if !confirm(reader, fmt.Sprintf("Complete sale for %s?", money(total))) {
		fmt.Println("Payment cancelled.")
		return
	}

	result, err := svc.CompleteSale(ctx, app.CompleteSaleRequest{Payments: payments})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printReceipt(result.Sale, change)
}

// promptCash asks for the tendered cash amount until it covers the total.
// Empty input means exact tender. Entering "q" aborts.
func promptCash(reader *bufio.Reader, total decimal.Decimal) (decimal.Decimal, bool) {
	for {
		fmt.Printf("Cash tendered (enter for exact %s, q to cancel): ", money(total))
		raw, ok := readLine(reader)
		if !ok {
			return decimal.Zero, false
		}
		if raw == "" {
			return total, true
		}
		if strings.EqualFold(raw, "q") {
			return decimal.Zero, false
		}
		tendered, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("Invalid amount.")
			continue
		}
		if tendered.LessThan(total) {
			fmt.Printf("Insufficient: %s is less than %s.\n", money(tendered), money(total))
			continue
		}
		if change := tendered.Sub(total); change.IsPositive() {
			fmt.Printf("Change due: %s\n", money(change))
		}
		return tendered, true
	}
}

func handleVoid(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	cart, err := svc.CurrentCart()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if cart.Sale == nil {
		fmt.Println("No active sale to void.")
		return
	}
	if !confirm(reader, "Void the current sale?") {
		fmt.Println("Void cancelled.")
		return
	}
	if err := svc.VoidSale(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Sale voided.")
}

func handleRefund(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, saleID string) {
	found, err := svc.GetSale(saleID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printSaleDetail(found.Sale)
	fmt.Print("Refund reason: ")
	reason, ok := readLine(reader)
	if !ok {
		return
	}
	if reason == "" {
		fmt.Println("A refund reason is required.")
		return
	}
	if !confirm(reader, fmt.Sprintf("Refund %s for %s?", found.Sale.ID, money(found.Sale.Total))) {
		fmt.Println("Refund cancelled.")
		return
	}
	result, err := svc.RefundSale(ctx, saleID, reason)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Refunded %s (%s).\n", result.Sale.ID, money(result.Sale.Total))
}
