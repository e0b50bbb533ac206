package queries

import (
	"context"

	"comanda/internal/core/ports"
)

// ListOrdersQueryHandler reads the full order list through the repository.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for the order list query.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns every order sorted by creation time descending. Items are
// not hydrated.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses, nil
}
