package queries

import (
	"context"

	"comanda/internal/core/ports"
)

// WaiterOrdersQueryHandler reads the orders belonging to one waiter.
type WaiterOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewWaiterOrdersQueryHandler creates a handler for the waiter orders query.
func NewWaiterOrdersQueryHandler(orderRepo ports.OrderRepository) WaiterOrdersQueryHandler {
	return WaiterOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns the waiter's orders, hydrated, newest first.
func (h WaiterOrdersQueryHandler) Handle(ctx context.Context, query WaiterOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, shell := range orders {
		if shell.WaiterID() != query.WaiterID() {
			continue
		}

		hydrated, err := h.orderRepo.Get(ctx, shell.ID())
		if err != nil {
			return nil, err
		}
		responses = append(responses, toOrderResponse(hydrated))
	}
	return responses, nil
}
