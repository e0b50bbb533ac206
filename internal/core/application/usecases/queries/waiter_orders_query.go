package queries

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrWaiterOrdersQueryIsNotConstructed = errors.New(
	"WaiterOrdersQuery must be created via NewWaiterOrdersQuery constructor",
)

// WaiterOrdersQuery retrieves the orders created by one waiter, hydrated,
// newest first. This backs the waiter's own dashboard.
type WaiterOrdersQuery struct { //nolint:recvcheck //using for validation
	waiterID int64

	guard guard.ConstructorGuard
}

// NewWaiterOrdersQuery creates a query for one waiter's orders.
func NewWaiterOrdersQuery(waiterID int64) (WaiterOrdersQuery, error) {
	q := WaiterOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setWaiterID(waiterID); err != nil {
		return WaiterOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q WaiterOrdersQuery) Validate() error {
	return q.guard.Validate(ErrWaiterOrdersQueryIsNotConstructed)
}

// WaiterID returns the identifier of the waiter whose orders to fetch.
func (q WaiterOrdersQuery) WaiterID() int64 {
	return q.waiterID
}

func (q *WaiterOrdersQuery) setWaiterID(waiterID int64) error {
	if waiterID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"waiterId", fmt.Errorf("%d is not greater than 0", waiterID))
	}

	q.waiterID = waiterID
	return nil
}
