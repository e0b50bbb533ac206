package commands

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order: a status
// change, a cook assignment, or both. Nil fields are left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  *order.Status
	cookID  *int64

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial order update. At least one of
// status or cookID must be provided.
func NewUpdateOrderCommand(orderID int64, status *order.Status, cookID *int64) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChanges(status, cookID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested status change, or nil.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// CookID returns the requested cook assignment, or nil.
func (c UpdateOrderCommand) CookID() *int64 {
	return c.cookID
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setChanges(status *order.Status, cookID *int64) error {
	if status == nil && cookID == nil {
		return errs.NewValueIsRequiredError("update")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if cookID != nil && *cookID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cookId", fmt.Errorf("%d is not greater than 0", *cookID))
	}

	c.status = status
	c.cookID = cookID
	return nil
}
