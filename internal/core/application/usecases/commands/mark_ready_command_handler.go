package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// MarkReadyCommandHandler finishes an order's preparation. The aggregate
// rejects the request unless every item is currently preparing; pending
// stragglers are never fast-forwarded.
type MarkReadyCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewMarkReadyCommandHandler creates a handler for finishing preparation.
func NewMarkReadyCommandHandler(orderRepo ports.OrderRepository) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{orderRepo: orderRepo}
}

// Handle advances every item of the order to ready.
func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.MarkReady(); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		if err := h.orderRepo.UpdateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
