// Package kv builds the application's repositories on top of the key-value
// substrate port. Each entity is one JSON record under a typed key prefix;
// identifier allocation uses the substrate's atomic counters.
package kv

import (
	"context"
	"fmt"

	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// Sequence implements ports.IDSequence on top of a key-value store. Each
// entity type gets its own counter under "seq:{entityType}"; the first
// allocated identifier is 1.
type Sequence struct {
	store ports.KVStore
}

// NewSequence creates an identifier sequence backed by the given store.
func NewSequence(store ports.KVStore) *Sequence {
	return &Sequence{store: store}
}

// NextID allocates the next identifier for entityType.
func (s *Sequence) NextID(ctx context.Context, entityType string) (int64, error) {
	if entityType == "" {
		return 0, errs.NewValueIsRequiredError("entityType")
	}
	return s.store.Increment(ctx, fmt.Sprintf("seq:%s", entityType))
}
