// Package queries contains the read operations of the CQRS architecture.
// Queries never mutate state; each handler reads through the repository
// ports and maps aggregates to flat response structures for the API layer.
package queries

import (
	"time"

	"comanda/internal/core/domain/model/order"
)

// OrderItemResponse is the read model of one order item.
type OrderItemResponse struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"orderId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	Version   int64  `json:"version"`
}

// OrderResponse is the read model of an order. Items is empty for listing
// views that do not hydrate them.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Table     string              `json:"table"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	WaiterID  int64               `json:"waiterId"`
	CookID    *int64              `json:"cookId,omitempty"`
	Version   int64               `json:"version"`
	Items     []OrderItemResponse `json:"items,omitempty"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:        item.ID(),
			OrderID:   item.OrderID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Status:    item.Status().String(),
			Version:   item.Version(),
		})
	}

	return OrderResponse{
		ID:        o.ID(),
		Table:     o.Table(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		WaiterID:  o.WaiterID(),
		CookID:    o.Cook(),
		Version:   o.Version(),
		Items:     items,
	}
}
