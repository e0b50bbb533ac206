package commands

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand represents a direct status change of one order item
// coming over the API.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64
	target order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to move an item to the target
// status.
func NewUpdateOrderItemCommand(itemID int64, target order.ItemStatus) (UpdateOrderItemCommand, error) {
	cmd := UpdateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateOrderItemCommand) ItemID() int64 {
	return c.itemID
}

// Target returns the requested item status.
func (c UpdateOrderItemCommand) Target() order.ItemStatus {
	return c.target
}

func (c *UpdateOrderItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemId", fmt.Errorf("%d is not greater than 0", itemID))
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateOrderItemCommand) setTarget(target order.ItemStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
