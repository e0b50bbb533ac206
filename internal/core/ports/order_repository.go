package ports

import (
	"context"

	"comanda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders and their
// items. Orders and items are independently addressable records joined by the
// item's order id; hydration is an explicit join performed by Get.
type OrderRepository interface {
	// Add persists a new order together with all of its items. The records
	// are written one by one; a failure mid-sequence leaves earlier writes in
	// place (the substrate has no transactions).
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items hydrated, sorted by item id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves all orders sorted by creation time descending,
	// without hydrating items.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Update persists the order record (status, cook assignment) using the
	// aggregate's version as an optimistic concurrency token. Items are not
	// written. Fails with a version conflict when the stored record moved on.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetItem retrieves a single order item by id.
	GetItem(ctx context.Context, id int64) (*order.OrderItem, error)

	// UpdateItem persists one item record under the same versioning rules
	// as Update.
	UpdateItem(ctx context.Context, item *order.OrderItem) error

	// Delete removes the order and all items referencing it. Items are
	// deleted first so no order ever points at missing items; an interrupted
	// delete leaves an item-less order shell that a re-run cleans up.
	Delete(ctx context.Context, id int64) error
}
