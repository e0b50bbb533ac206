// Package orderrepo persists order aggregates as key-value records. The
// order shell and its items are independently addressable JSON documents
// ("order:{id}" and "order_item:{id}"); hydration is an explicit join over
// the item prefix performed at read time.
package orderrepo

import (
	"time"

	"comanda/internal/core/domain/model/order"
)

// OrderDTO is the JSON document stored under "order:{id}".
type OrderDTO struct {
	ID        int64     `json:"id"`
	Table     string    `json:"table"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	WaiterID  int64     `json:"waiterId"`
	CookID    *int64    `json:"cookId,omitempty"`
	Version   int64     `json:"version"`
}

// OrderItemDTO is the JSON document stored under "order_item:{id}".
type OrderItemDTO struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"orderId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	Version   int64  `json:"version"`
}

// fromDomain converts an order aggregate to its stored representation.
// Items are mapped separately because they live under their own keys.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		Table:     aggregate.Table(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		WaiterID:  aggregate.WaiterID(),
		CookID:    aggregate.Cook(),
		Version:   aggregate.Version(),
	}
}

// itemFromDomain converts one order item to its stored representation.
func itemFromDomain(item *order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID(),
		OrderID:   item.OrderID(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		Status:    item.Status().String(),
		Version:   item.Version(),
	}
}

// toDomain reconstructs an order aggregate from its stored record and the
// already-restored items belonging to it. Items may be empty for list views.
func toDomain(dto OrderDTO, items []*order.OrderItem) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Table,
		dto.WaiterID,
		dto.CookID,
		status,
		dto.CreatedAt,
		dto.Version,
		items,
	)
}

// itemToDomain reconstructs one order item from its stored record.
func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(dto.ID, dto.OrderID, dto.ProductID, dto.Quantity, status, dto.Version)
}
