package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"

	"celtis-pos/internal/db"

	"github.com/joho/godotenv"
)

// Applies every .sql file under migrations/ in name order against the
// database named by POS_DATABASE_URL. The schema is a single idempotent
// table, so re-running is safe.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	entries, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		log.Fatalf("Failed to list migrations: %v", err)
	}
	sort.Strings(entries)
	if len(entries) == 0 {
		log.Fatalf("No migration files found in %s", dir)
	}

	for _, path := range entries {
		sqlFile, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}
		if _, err := pool.Exec(ctx, string(sqlFile)); err != nil {
			log.Fatalf("Migration %s failed: %v", path, err)
		}
		log.Printf("Applied %s", path)
	}
	log.Println("Migrations successful.")
}
