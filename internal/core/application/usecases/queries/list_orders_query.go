package queries

import (
	"errors"

	"comanda/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order, newest first, without items. This
// backs the administrator dashboard listing.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a parameterless query for the full order list.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
