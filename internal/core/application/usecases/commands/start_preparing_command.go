package commands

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrStartPreparingCommandIsNotConstructed = errors.New(
	"StartPreparingCommand must be created via NewStartPreparingCommand constructor",
)

// StartPreparingCommand represents a cook picking up an order: the cook is
// assigned and every item moves from pending to preparing.
type StartPreparingCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	cookID  int64

	guard guard.ConstructorGuard
}

// NewStartPreparingCommand creates a command for a cook to pick up an order.
func NewStartPreparingCommand(orderID, cookID int64) (StartPreparingCommand, error) {
	cmd := StartPreparingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCookID(cookID),
	); err != nil {
		return StartPreparingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparingCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pick up.
func (c StartPreparingCommand) OrderID() int64 {
	return c.orderID
}

// CookID returns the identifier of the cook picking the order up.
func (c StartPreparingCommand) CookID() int64 {
	return c.cookID
}

func (c *StartPreparingCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *StartPreparingCommand) setCookID(cookID int64) error {
	if cookID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cookId", fmt.Errorf("%d is not greater than 0", cookID))
	}

	c.cookID = cookID
	return nil
}
