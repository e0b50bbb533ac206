package queries

import (
	"errors"

	"comanda/internal/pkg/guard"
)

var ErrKitchenQueueQueryIsNotConstructed = errors.New(
	"KitchenQueueQuery must be created via NewKitchenQueueQuery constructor",
)

// KitchenQueueQuery retrieves the cook's work queue: pending orders whose
// items are not yet all ready, hydrated, each annotated with the single
// kitchen action currently permitted on it.
type KitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewKitchenQueueQuery creates a parameterless query for the kitchen queue.
func NewKitchenQueueQuery() KitchenQueueQuery {
	return KitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q KitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrKitchenQueueQueryIsNotConstructed)
}

// KitchenOrderResponse is one entry of the kitchen queue. PermittedAction is
// "start_preparing", "mark_ready" or "none"; mixed item states yield "none"
// until the items converge.
type KitchenOrderResponse struct {
	OrderResponse
	PermittedAction string `json:"permittedAction"`
}
