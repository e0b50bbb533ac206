package services

import (
	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/order"
)

// Billing is a domain service that prices orders against the product catalog.
type Billing struct{}

// NewBilling creates a new Billing instance.
func NewBilling() Billing {
	return Billing{}
}

// OrderTotal computes the sum of quantity * price over the order's items.
// Items referencing a product that no longer exists in the catalog contribute
// zero instead of failing: the order must remain billable after an
// administrator deletes a product.
func (b Billing) OrderTotal(items []*order.OrderItem, products map[int64]catalog.Product) float64 {
	var total float64
	for _, item := range items {
		product, ok := products[item.ProductID()]
		if !ok {
			continue
		}
		total += float64(item.Quantity()) * product.Price
	}
	return total
}

// ProductIndex builds the id lookup used by OrderTotal from a catalog listing.
func (b Billing) ProductIndex(products []catalog.Product) map[int64]catalog.Product {
	index := make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
