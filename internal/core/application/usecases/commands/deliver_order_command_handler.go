package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// DeliverOrderCommandHandler closes an order out. The readiness predicate is
// enforced by the aggregate, so a client that skips the check cannot deliver
// an unfinished order.
type DeliverOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(orderRepo ports.OrderRepository) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{orderRepo: orderRepo}
}

// Handle moves the order from pending to delivered.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.Deliver(); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, aggregate)
}
