package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/order"
)

// CreateOrder handles POST /api/v1/orders. The waiter opening the order is
// taken from the token, not the body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(req.Table, requestClaims(ctx).UserID, lines)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(created.ID())
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, response)
}

// ListOrders handles GET /api/v1/orders. Waiters see only their own orders,
// every other role sees the full list.
func (s *Server) ListOrders(ctx echo.Context) error {
	claims := requestClaims(ctx)

	if claims.Role == roleWaiter {
		query, err := queries.NewWaiterOrdersQuery(claims.UserID)
		if err != nil {
			return s.writeError(ctx, err)
		}
		response, err := s.waiterOrders.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, response)
	}

	response, err := s.listOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	var status *order.Status
	if req.Status != nil {
		parsed, err := order.StatusFromString(*req.Status)
		if err != nil {
			return s.writeError(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(id, status, req.CookID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.updateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, id)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.deleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderItem handles PUT /api/v1/order-items/:id.
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateOrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	target, err := order.ItemStatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(id, target)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.updateOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartPreparing handles POST /api/v1/orders/:id/start-preparing. The cook
// picking up the order is taken from the token.
func (s *Server) StartPreparing(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewStartPreparingCommand(id, requestClaims(ctx).UserID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.startPreparing.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondWithOrder(ctx, id)
}

// MarkReady handles POST /api/v1/orders/:id/mark-ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewMarkReadyCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.markReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondWithOrder(ctx, id)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err := s.deliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondWithOrder(ctx, id)
}

// KitchenQueue handles GET /api/v1/kitchen/queue.
func (s *Server) KitchenQueue(ctx echo.Context) error {
	response, err := s.kitchenQueue.Handle(ctx.Request().Context(), queries.NewKitchenQueueQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CashierBoard handles GET /api/v1/cashier/board.
func (s *Server) CashierBoard(ctx echo.Context) error {
	response, err := s.cashierBoard.Handle(ctx.Request().Context(), queries.NewCashierBoardQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// respondWithOrder re-reads the order and returns its current state, so
// mutating endpoints answer with the post-transition view.
func (s *Server) respondWithOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}
