package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"celtis-pos/internal/core"
)

// Directory is the read-only cashier directory. The engine itself never
// authenticates; adapters verify a PIN here and then hand the cashier
// record to the engine as session context.
type Directory struct {
	cashiers []core.Cashier
}

// NewDirectory builds a directory from an in-memory cashier list.
func NewDirectory(cashiers []core.Cashier) *Directory {
	return &Directory{cashiers: append([]core.Cashier(nil), cashiers...)}
}

// LoadDirectory reads a directory from a JSON file holding an array of
// cashiers.
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cashier file %s: %w", path, err)
	}
	var cashiers []core.Cashier
	if err := json.Unmarshal(data, &cashiers); err != nil {
		return nil, fmt.Errorf("failed to decode cashier file %s: %w", path, err)
	}
	return NewDirectory(cashiers), nil
}

// Cashiers returns every cashier on file.
func (d *Directory) Cashiers() []core.Cashier {
	return append([]core.Cashier(nil), d.cashiers...)
}

// FindByID returns the cashier with the given id.
func (d *Directory) FindByID(id string) (core.Cashier, bool) {
	for _, c := range d.cashiers {
		if c.ID == id {
			return c, true
		}
	}
	return core.Cashier{}, false
}

// VerifyPIN checks a cashier's PIN and returns the record on success.
func (d *Directory) VerifyPIN(id, pin string) (core.Cashier, bool) {
	c, ok := d.FindByID(id)
	if !ok || pin == "" || c.PIN != pin {
		return core.Cashier{}, false
	}
	return c, true
}
