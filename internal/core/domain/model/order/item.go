package order

import (
	"errors"
	"fmt"

	"comanda/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one line of an order: a quantity of a single catalog product,
// tracked through the kitchen state machine. Items are independently
// addressable records joined to their order by OrderID; the order does not
// own them by pointer in storage.
//
// All fields except status are write-once.
type OrderItem struct {
	// id is the unique identifier for the item
	id int64

	// orderID is the back-reference to the owning order
	orderID int64

	// productID references a catalog product
	productID int64

	// quantity is the number of units ordered (must be positive)
	quantity int

	// status is the kitchen-side state of the item
	status ItemStatus

	// version is the optimistic concurrency token for stored updates
	version int64

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewOrderItem creates a new OrderItem in ItemPending status at version 1.
// All identifiers must be positive and quantity must be greater than zero.
func NewOrderItem(id, orderID, productID int64, quantity int) (*OrderItem, error) {
	item := &OrderItem{
		status:        ItemPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistence with its stored
// status and version. Used only by repositories.
func RestoreOrderItem(id, orderID, productID int64, quantity int, status ItemStatus, version int64) (*OrderItem, error) {
	item, err := NewOrderItem(id, orderID, productID, quantity)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not greater than 0", version))
	}

	item.status = status
	item.version = version
	return item, nil
}

// Validate ensures the OrderItem was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() int64 {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *OrderItem) OrderID() int64 {
	return i.orderID
}

// ProductID returns the referenced catalog product identifier.
func (i *OrderItem) ProductID() int64 {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Status returns the current kitchen-side status of the item.
func (i *OrderItem) Status() ItemStatus {
	return i.status
}

// Version returns the optimistic concurrency token of the stored record.
func (i *OrderItem) Version() int64 {
	return i.version
}

// StartPreparing moves the item from ItemPending to ItemPreparing.
func (i *OrderItem) StartPreparing() error {
	newStatus, err := i.status.StartPreparing()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// MarkReady moves the item from ItemPreparing to ItemReady.
func (i *OrderItem) MarkReady() error {
	newStatus, err := i.status.MarkReady()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// TransitionTo applies a single validated forward step of the item state
// machine. Used for direct item status updates coming over the API.
func (i *OrderItem) TransitionTo(target ItemStatus) error {
	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

func (i *OrderItem) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *OrderItem) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}
	i.orderID = orderID
	return nil
}

func (i *OrderItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"productId", fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
