package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"celtis-pos/internal/adapters/cli"
	"celtis-pos/internal/adapters/repl"
	"celtis-pos/internal/app"
	"celtis-pos/internal/catalog"
	"celtis-pos/internal/core"
	"celtis-pos/internal/db"
	"celtis-pos/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cat, err := catalog.Load(envOr("POS_CATALOG_FILE", "data/products.json"))
	if err != nil {
		log.Fatalf("Unable to load product catalog: %v", err)
	}
	dir, err := catalog.LoadDirectory(envOr("POS_CASHIERS_FILE", "data/cashiers.json"))
	if err != nil {
		log.Fatalf("Unable to load cashier directory: %v", err)
	}

	var st core.Store
	if os.Getenv("POS_DATABASE_URL") != "" {
		pool, err := db.NewPool(ctx)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()
		st = store.NewPostgresStore(pool, envOr("POS_TERMINAL_ID", "terminal-1"))
	} else {
		st = store.NewFileStore(envOr("POS_DATA_FILE", "pos-state.json"))
	}

	snap, err := st.Load(ctx)
	if err != nil {
		log.Fatalf("Unable to load terminal state: %v", err)
	}

	engine := core.NewEngine(st, snap)
	svc := app.NewAppService(engine, cat, dir)

	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
