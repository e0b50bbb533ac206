package commands

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents the kitchen finishing an order: every item
// moves from preparing to ready.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark an order's items ready.
func NewMarkReadyCommand(orderID int64) (MarkReadyCommand, error) {
	cmd := MarkReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finish.
func (c MarkReadyCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkReadyCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
