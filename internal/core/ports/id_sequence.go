package ports

import "context"

// IDSequence issues monotonically increasing integer identifiers, one counter
// per entity type. Identifiers are never reused, even after the entity is
// deleted.
type IDSequence interface {
	// NextID returns the next identifier for the given entity type
	// (e.g. "order", "order_item", "product").
	NextID(ctx context.Context, entityType string) (int64, error)
}
