// Package catalog loads the read-only reference data consumed by the
// terminal: the product catalog and the cashier directory. Both are plain
// JSON documents supplied at startup; the engine only reads them at the
// moment a product is added to a cart or a cashier signs in.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"celtis-pos/internal/core"
)

// Catalog is the product reference data for one terminal.
type Catalog struct {
	products []core.Product
	byID     map[string]int
}

// New builds a catalog from an in-memory product list.
func New(products []core.Product) *Catalog {
	c := &Catalog{
		products: append([]core.Product(nil), products...),
		byID:     make(map[string]int, len(products)),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = i
	}
	return c
}

// Load reads a catalog from a JSON file holding an array of products.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var products []core.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}
	return New(products), nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []core.Product {
	return append([]core.Product(nil), c.products...)
}

// ByCategory returns the products in one category.
func (c *Catalog) ByCategory(category string) []core.Product {
	var out []core.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct product categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// FindByID returns the product with the given id.
func (c *Catalog) FindByID(id string) (core.Product, bool) {
	if i, ok := c.byID[id]; ok {
		return c.products[i], true
	}
	return core.Product{}, false
}

// Lookup resolves a user-entered reference against id, SKU and barcode, in
// that order. SKU matching is case-insensitive; barcodes match exactly.
func (c *Catalog) Lookup(ref string) (core.Product, bool) {
	if p, ok := c.FindByID(ref); ok {
		return p, true
	}
	for _, p := range c.products {
		if strings.EqualFold(p.SKU, ref) {
			return p, true
		}
	}
	for _, p := range c.products {
		if p.Barcode != "" && p.Barcode == ref {
			return p, true
		}
	}
	return core.Product{}, false
}

// Search returns products whose name, SKU or barcode contains the query,
// case-insensitively. An empty query returns the full catalog.
func (c *Catalog) Search(query string) []core.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Products()
	}
	var out []core.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(p.Barcode, q) {
			out = append(out, p)
		}
	}
	return out
}
