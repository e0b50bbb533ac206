package queries

import (
	"context"

	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// KitchenQueueQueryHandler builds the cook's queue. The listing scan does not
// hydrate items, so each candidate order is re-read individually; the policy
// then filters and annotates.
type KitchenQueueQueryHandler struct {
	orderRepo ports.OrderRepository
	policy    services.KitchenPolicy
}

// NewKitchenQueueQueryHandler creates a handler for the kitchen queue query.
func NewKitchenQueueQueryHandler(orderRepo ports.OrderRepository) KitchenQueueQueryHandler {
	return KitchenQueueQueryHandler{
		orderRepo: orderRepo,
		policy:    services.NewKitchenPolicy(),
	}
}

// Handle returns the active kitchen orders, newest first, each with its
// permitted action.
func (h KitchenQueueQueryHandler) Handle(ctx context.Context, query KitchenQueueQuery) ([]KitchenOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	queue := make([]KitchenOrderResponse, 0, len(orders))
	for _, shell := range orders {
		hydrated, err := h.orderRepo.Get(ctx, shell.ID())
		if err != nil {
			return nil, err
		}
		if !h.policy.IsActiveForKitchen(hydrated) {
			continue
		}

		queue = append(queue, KitchenOrderResponse{
			OrderResponse:   toOrderResponse(hydrated),
			PermittedAction: h.policy.PermittedAction(hydrated).String(),
		})
	}
	return queue, nil
}
