package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// StartPreparingCommandHandler moves an order into preparation. The state
// check lives in the aggregate: a pickup is only accepted while every item is
// still pending, so two cooks racing for the same order cannot both win.
type StartPreparingCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewStartPreparingCommandHandler creates a handler for order pickup.
func NewStartPreparingCommandHandler(orderRepo ports.OrderRepository) StartPreparingCommandHandler {
	return StartPreparingCommandHandler{orderRepo: orderRepo}
}

// Handle assigns the cook and advances every item to preparing. The order
// record is written first (cook assignment), then each item; a stale version
// on any write surfaces as a version conflict.
func (h *StartPreparingCommandHandler) Handle(ctx context.Context, cmd StartPreparingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.StartPreparing(cmd.CookID()); err != nil {
		return err
	}

	if err := h.orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		if err := h.orderRepo.UpdateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
