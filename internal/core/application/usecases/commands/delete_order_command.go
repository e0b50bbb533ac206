package commands

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents removing an order and all of its items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
