package commands

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// CreateOrderCommandHandler opens new orders. It allocates the order and item
// identifiers from the sequence, builds the aggregate in pending status and
// persists it.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	sequence  ports.IDSequence
	catalog   ports.ProductCatalog
	now       func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	orderRepo ports.OrderRepository,
	sequence ports.IDSequence,
	catalog ports.ProductCatalog,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
		sequence:  sequence,
		catalog:   catalog,
		now:       time.Now,
	}
}

// Handle processes the order creation command and returns the created
// aggregate with its items hydrated. Every referenced product must exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for _, line := range cmd.Lines() {
		if _, err := h.catalog.GetProduct(ctx, line.ProductID); err != nil {
			return nil, err
		}
	}

	orderID, err := h.sequence.NextID(ctx, "order")
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		itemID, err := h.sequence.NextID(ctx, "order_item")
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(itemID, orderID, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(orderID, cmd.Table(), cmd.WaiterID(), h.now().UTC(), items)
	if err != nil {
		return nil, err
	}

	if err := h.orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
