package queries

import (
	"context"

	"comanda/internal/core/ports"
)

// GetOrderQueryHandler reads one order with its items through the repository.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for the single-order query.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle returns the order with items sorted by id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(o), nil
}
