package commands

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested line of a new order: a catalog product and how
// many units of it the table wants.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a waiter's request to open a new order for a
// table. Identifier allocation happens in the handler; the command only
// carries the request data.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("table 4", waiterID, []OrderLine{{ProductID: 2, Quantity: 1}})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	table    string
	waiterID int64
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order. The table
// label must be non-empty, the waiter id positive, and every line must name a
// product with a positive quantity.
func NewCreateOrderCommand(table string, waiterID int64, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTable(table),
		cmd.setWaiterID(waiterID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Table returns the table label the order is taken for.
func (c CreateOrderCommand) Table() string {
	return c.table
}

// WaiterID returns the identifier of the creating waiter.
func (c CreateOrderCommand) WaiterID() int64 {
	return c.waiterID
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setTable(table string) error {
	if table == "" {
		return errs.NewValueIsRequiredError("table")
	}

	c.table = table
	return nil
}

func (c *CreateOrderCommand) setWaiterID(waiterID int64) error {
	if waiterID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"waiterId", fmt.Errorf("%d is not greater than 0", waiterID))
	}

	c.waiterID = waiterID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, line := range lines {
		if line.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"productId", fmt.Errorf("%d is not greater than 0", line.ProductID))
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}

	c.lines = lines
	return nil
}
