package commands

import (
	"context"
	"fmt"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial order updates coming over the
// API. Status changes go through the same aggregate transitions as the
// dedicated commands, so a plain update cannot bypass the readiness check.
type UpdateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(orderRepo ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orderRepo: orderRepo}
}

// Handle applies the requested changes and persists the order record.
// Requesting the status the order already has is a no-op for that field.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cookID := cmd.CookID(); cookID != nil {
		if err := aggregate.AssignCook(*cookID); err != nil {
			return err
		}
	}

	if status := cmd.Status(); status != nil && *status != aggregate.Status() {
		// the only order-level transition is pending -> delivered
		if *status != order.StatusDelivered {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("cannot move a %s order back to %s", aggregate.Status(), status))
		}
		if err := aggregate.Deliver(); err != nil {
			return err
		}
	}

	return h.orderRepo.Update(ctx, aggregate)
}
