// Package catalog holds the read models for the product catalog, an external
// collaborator of the order lifecycle. Products and categories are plain
// records managed by the administrator; the lifecycle engine only resolves
// them by id when pricing an order.
package catalog

import (
	"comanda/internal/pkg/errs"
)

// Product is a sellable catalog entry. CategoryID is nil for uncategorized
// products.
type Product struct {
	ID         int64
	Name       string
	Price      float64
	CategoryID *int64
}

// Validate checks the product's required fields.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if p.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.Price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	return nil
}

// Category groups products for menu display.
type Category struct {
	ID   int64
	Name string
}

// Validate checks the category's required fields.
func (c Category) Validate() error {
	if c.ID <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if c.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
