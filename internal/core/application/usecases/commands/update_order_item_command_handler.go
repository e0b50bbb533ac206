package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// UpdateOrderItemCommandHandler applies a single forward step of the item
// state machine. Skipping a step or moving backwards is rejected by the item
// itself.
type UpdateOrderItemCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderItemCommandHandler creates a handler for direct item updates.
func NewUpdateOrderItemCommandHandler(orderRepo ports.OrderRepository) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{orderRepo: orderRepo}
}

// Handle moves the item to the target status and persists it.
func (h *UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.orderRepo.GetItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err := item.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	return h.orderRepo.UpdateItem(ctx, item)
}
