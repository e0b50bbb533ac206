package queries

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items hydrated.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	q.orderID = orderID
	return nil
}
