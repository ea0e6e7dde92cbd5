package types

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry with a price and a stock counter.
//
// Stock is mutated only through the inventory reconciler (reservations and
// restocks) and the catalog's own CRUD surface (initial stock, corrections).
type Product struct {
	ID       int64
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int64
}

// Validate checks catalog-level field constraints.
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("product name cannot be empty")
	}

	if p.Price.IsNegative() {
		return errors.New("product price cannot be negative")
	}

	if p.Stock < 0 {
		return errors.New("product stock cannot be negative")
	}

	return nil
}
