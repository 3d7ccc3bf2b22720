package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"celtis-pos/internal/catalog"
	"celtis-pos/internal/core"

	"github.com/shopspring/decimal"
)

func seedCatalog() *catalog.Catalog {
	return catalog.New([]core.Product{
		{ID: "prod-001", Name: "Mineral Water 1.5L", SKU: "BEV-001", Price: decimal.RequireFromString("0.350"), Category: "Beverages", Stock: 120, Barcode: "6251001000011"},
		{ID: "prod-002", Name: "Potato Chips 150g", SKU: "SNK-001", Price: decimal.RequireFromString("0.850"), Category: "Snacks", Stock: 90, Barcode: "6251002000010"},
		{ID: "prod-003", Name: "Fresh Milk 1L", SKU: "DRY-001", Price: decimal.RequireFromString("0.950"), Category: "Dairy", Stock: 75},
	})
}

func TestCatalog_Lookup(t *testing.T) {
	c := seedCatalog()

	tests := []struct {
		name   string
		ref    string
		wantID string
		found  bool
	}{
		{"By id", "prod-001", "prod-001", true},
		{"By SKU", "BEV-001", "prod-001", true},
		{"By SKU case-insensitive", "bev-001", "prod-001", true},
		{"By barcode", "6251002000010", "prod-002", true},
		{"Unknown reference", "nope", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := c.Lookup(tt.ref)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.ref, ok, tt.found)
			}
			if ok && p.ID != tt.wantID {
				t.Errorf("Lookup(%q) = %s, want %s", tt.ref, p.ID, tt.wantID)
			}
		})
	}
}

func TestCatalog_Search(t *testing.T) {
	c := seedCatalog()

	if got := c.Search("milk"); len(got) != 1 || got[0].ID != "prod-003" {
		t.Errorf("Search(milk) = %+v", got)
	}
	if got := c.Search("BEV"); len(got) != 1 || got[0].ID != "prod-001" {
		t.Errorf("Search(BEV) = %+v", got)
	}
	if got := c.Search(""); len(got) != 3 {
		t.Errorf("empty query should return the full catalog, got %d", len(got))
	}
	if got := c.Search("zzz"); len(got) != 0 {
		t.Errorf("Search(zzz) = %+v, want none", got)
	}
}

func TestCatalog_Categories(t *testing.T) {
	c := seedCatalog()
	got := c.Categories()
	want := []string{"Beverages", "Dairy", "Snacks"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %s, want %s (sorted)", i, got[i], want[i])
		}
	}
}

func TestCatalog_ByCategory(t *testing.T) {
	c := seedCatalog()
	if got := c.ByCategory("beverages"); len(got) != 1 || got[0].ID != "prod-001" {
		t.Errorf("ByCategory(beverages) = %+v", got)
	}
	if got := c.ByCategory("Frozen"); len(got) != 0 {
		t.Errorf("ByCategory(Frozen) = %+v, want none", got)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	payload := `[
		{"id": "p1", "name": "Croissant", "sku": "BKY-002", "price": "0.550", "category": "Bakery", "stock": 45}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p, ok := c.FindByID("p1")
	if !ok {
		t.Fatal("loaded product not found")
	}
	if !p.Price.Equal(decimal.RequireFromString("0.550")) {
		t.Errorf("price = %s, want 0.550", p.Price)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestDirectory_VerifyPIN(t *testing.T) {
	d := catalog.NewDirectory([]core.Cashier{
		{ID: "cash-001", Name: "Ahmad Ali", PIN: "1234"},
	})

	if _, ok := d.VerifyPIN("cash-001", "1234"); !ok {
		t.Error("valid PIN rejected")
	}
	if _, ok := d.VerifyPIN("cash-001", "9999"); ok {
		t.Error("wrong PIN accepted")
	}
	if _, ok := d.VerifyPIN("cash-001", ""); ok {
		t.Error("empty PIN accepted")
	}
	if _, ok := d.VerifyPIN("cash-404", "1234"); ok {
		t.Error("unknown cashier accepted")
	}
}
