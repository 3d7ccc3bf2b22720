package cli

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"celtis-pos/internal/app"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:], the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "history", "hist":
		status := ""
		if len(args) > 1 {
			status = strings.ToLower(args[1])
		}
		result, err := svc.History(status)
		if err != nil {
			log.Fatalf("Failed to load history: %v", err)
		}
		writeJSON(result.Sales)

	case "sale":
		if len(args) < 2 {
			log.Fatal("Usage: app sale <sale-id>")
		}
		result, err := svc.GetSale(args[1])
		if err != nil {
			log.Fatalf("Failed to load sale: %v", err)
		}
		writeJSON(result.Sale)

	case "parked":
		result, err := svc.ListParked()
		if err != nil {
			log.Fatalf("Failed to list parked sales: %v", err)
		}
		writeJSON(result.Sales)

	case "products":
		category := ""
		if len(args) > 1 {
			category = strings.Join(args[1:], " ")
		}
		result, err := svc.ListProducts(category)
		if err != nil {
			log.Fatalf("Failed to list products: %v", err)
		}
		writeJSON(result.Products)

	case "report", "rep":
		result, err := svc.Report()
		if err != nil {
			log.Fatalf("Failed to build report: %v", err)
		}
		writeJSON(result.Report)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: history [status], sale <id>, parked, products [category], report", args[0])
	}
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
