package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order together with its items. The
// repository deletes items before the order shell, so a re-run after an
// interrupted delete leaves nothing behind.
type DeleteOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orderRepo ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orderRepo: orderRepo}
}

// Handle cascades the delete over the order's items and the order itself.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepo.Delete(ctx, cmd.OrderID())
}
