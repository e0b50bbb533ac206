package queries

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// CashierBoardQueryHandler builds the cashier's priced board. The catalog is
// read once per query and indexed in memory to price every order.
type CashierBoardQueryHandler struct {
	orderRepo ports.OrderRepository
	catalog   ports.ProductCatalog
	billing   services.Billing
}

// NewCashierBoardQueryHandler creates a handler for the cashier board query.
func NewCashierBoardQueryHandler(orderRepo ports.OrderRepository, catalog ports.ProductCatalog) CashierBoardQueryHandler {
	return CashierBoardQueryHandler{
		orderRepo: orderRepo,
		catalog:   catalog,
		billing:   services.NewBilling(),
	}
}

// Handle returns the pending and delivered orders with computed totals and a
// per-order readiness flag, newest first within each group.
func (h CashierBoardQueryHandler) Handle(ctx context.Context, query CashierBoardQuery) (CashierBoardResponse, error) {
	if err := query.Validate(); err != nil {
		return CashierBoardResponse{}, err
	}

	products, err := h.catalog.GetAllProducts(ctx)
	if err != nil {
		return CashierBoardResponse{}, err
	}
	index := h.billing.ProductIndex(products)

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return CashierBoardResponse{}, err
	}

	board := CashierBoardResponse{
		Pending:   make([]CashierOrderResponse, 0, len(orders)),
		Delivered: make([]CashierOrderResponse, 0),
	}
	for _, shell := range orders {
		hydrated, err := h.orderRepo.Get(ctx, shell.ID())
		if err != nil {
			return CashierBoardResponse{}, err
		}

		entry := CashierOrderResponse{
			OrderResponse:  toOrderResponse(hydrated),
			Total:          h.billing.OrderTotal(hydrated.Items(), index),
			ReadyToDeliver: hydrated.ReadyToDeliver(),
		}

		if hydrated.Status() == order.StatusDelivered {
			board.Delivered = append(board.Delivered, entry)
		} else {
			board.Pending = append(board.Pending, entry)
		}
	}
	return board, nil
}
