package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"celtis-pos/internal/app"
	"celtis-pos/internal/core"

	"github.com/shopspring/decimal"
)

// Run starts the interactive register loop. Slash commands dispatch
// deterministically; bare input is treated as a scanned product reference
// (SKU or barcode) and added straight to the cart.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Celtis POS Terminal")
	if res, err := svc.ActiveCashier(); err == nil {
		fmt.Printf("Signed in: %s (%s)\n", res.Cashier.Name, res.Cashier.ID)
	} else {
		fmt.Println("No cashier signed in. Use /cashier <id> to sign in.")
	}
	fmt.Println("Scan or type a SKU/barcode to add an item, or use /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "cashier":
			if len(args) < 1 {
				fmt.Println("Usage: /cashier <id>")
				return nil
			}
			handleLogin(ctx, reader, svc, args[0])

		case "cashiers":
			result, err := svc.ListCashiers()
			if err != nil {
				return err
			}
			printCashiers(result)

		case "logout":
			if err := svc.Logout(ctx); err != nil {
				return err
			}
			fmt.Println("Signed out.")

		case "products":
			category := ""
			if len(args) > 0 {
				category = strings.Join(args, " ")
			}
			result, err := svc.ListProducts(category)
			if err != nil {
				return err
			}
			printProducts(result)

		case "categories":
			categories, err := svc.ListCategories()
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(categories, ", "))

		case "find":
			if len(args) < 1 {
				fmt.Println("Usage: /find <query>")
				return nil
			}
			result, err := svc.SearchProducts(strings.Join(args, " "))
			if err != nil {
				return err
			}
			printProducts(result)

		case "cart":
			result, err := svc.CurrentCart()
			if err != nil {
				return err
			}
			printCart(result)

		case "add":
			if len(args) < 1 {
				fmt.Println("Usage: /add <sku|barcode> [qty]")
				return nil
			}
			qty := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					fmt.Println("Invalid quantity.")
					return nil
				}
				qty = n
			}
			result, err := svc.AddToCart(ctx, args[0], qty)
			if err != nil {
				return err
			}
			printCart(result)

		case "qty":
			if len(args) < 2 {
				fmt.Println("Usage: /qty <sku> <n>")
				return nil
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Invalid quantity.")
				return nil
			}
			result, err := svc.UpdateQuantity(ctx, args[0], n)
			if err != nil {
				return err
			}
			printCart(result)

		case "remove":
			if len(args) < 1 {
				fmt.Println("Usage: /remove <sku>")
				return nil
			}
			result, err := svc.RemoveFromCart(ctx, args[0])
			if err != nil {
				return err
			}
			printCart(result)

		case "discount":
			if len(args) < 2 {
				fmt.Println("Usage: /discount <sku> <pct>")
				return nil
			}
			pct, err := decimal.NewFromString(args[1])
			if err != nil {
				fmt.Println("Invalid percentage.")
				return nil
			}
			result, err := svc.ApplyItemDiscount(ctx, args[0], pct)
			if err != nil {
				return err
			}
			printCart(result)

		case "clear":
			result, err := svc.ClearCart(ctx)
			if err != nil {
				return err
			}
			printCart(result)

		case "customer":
			if len(args) < 1 {
				fmt.Println("Usage: /customer <name>")
				return nil
			}
			if err := svc.SetCustomer(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println("Customer set.")

		case "note":
			if len(args) < 1 {
				fmt.Println("Usage: /note <text>")
				return nil
			}
			if err := svc.SetNote(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println("Note set.")

		case "new":
			result, err := svc.StartNewSale(ctx)
			if err != nil {
				return err
			}
			fmt.Println("New sale started.")
			printCart(result)

		case "park":
			if err := svc.ParkSale(ctx); err != nil {
				return err
			}
			fmt.Println("Sale parked. Register is free.")

		case "parked":
			result, err := svc.ListParked()
			if err != nil {
				return err
			}
			printParked(result)

		case "resume":
			if len(args) < 1 {
				fmt.Println("Usage: /resume <sale-id>")
				return nil
			}
			result, err := svc.ResumeSale(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Sale resumed.")
			printCart(result)

		case "pay":
			handlePay(ctx, reader, svc)

		case "void":
			handleVoid(ctx, reader, svc)

		case "history":
			status := ""
			if len(args) > 0 {
				status = strings.ToLower(args[0])
			}
			result, err := svc.History(status)
			if err != nil {
				return err
			}
			printHistory(result)

		case "show":
			if len(args) < 1 {
				fmt.Println("Usage: /show <sale-id>")
				return nil
			}
			result, err := svc.GetSale(args[0])
			if err != nil {
				return err
			}
			printSaleDetail(result.Sale)

		case "refund":
			if len(args) < 1 {
				fmt.Println("Usage: /refund <sale-id>")
				return nil
			}
			handleRefund(ctx, reader, svc, args[0])

		case "report":
			result, err := svc.Report()
			if err != nil {
				return err
			}
			printReport(&result.Report)

		case "help":
			printHelp()

		case "exit", "quit":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s (try /help)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print(prompt(svc))
		input, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if err := dispatchSlash(input); err != nil {
				if errors.Is(err, errExit) {
					break
				}
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		// Bare input: treat as a scanned item, optionally "<ref> <qty>".
		tokens := strings.Fields(input)
		qty := 1
		if len(tokens) > 1 {
			if n, err := strconv.Atoi(tokens[1]); err == nil && n > 0 {
				qty = n
			}
		}
		result, err := svc.AddToCart(ctx, tokens[0], qty)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printCart(result)
	}
}

// prompt renders the register prompt with a live item count and total.
func prompt(svc app.ApplicationService) string {
	result, err := svc.CurrentCart()
	if err != nil || result.Sale == nil {
		return "\npos> "
	}
	return fmt.Sprintf("\npos [%d items | %s]> ", result.ItemCount, money(result.Sale.Total))
}

func printHelp() {
	fmt.Println("Session    : /cashier <id>, /cashiers, /logout")
	fmt.Println("Catalog    : /products [category], /categories, /find <query>")
	fmt.Println("Cart       : <sku> [qty], /add <sku> [qty], /qty <sku> <n>, /remove <sku>,")
	fmt.Println("             /discount <sku> <pct>, /clear, /customer <name>, /note <text>, /cart")
	fmt.Println("Lifecycle  : /new, /park, /parked, /resume <id>, /pay, /void")
	fmt.Println("History    : /history [" + statusList() + "], /show <id>, /refund <id>")
	fmt.Println("Reports    : /report")
	fmt.Println("Other      : /help, /exit")
}

func statusList() string {
	return strings.Join([]string{
		string(core.StatusCompleted),
		string(core.StatusVoided),
		string(core.StatusRefunded),
	}, "|")
}
