package order

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an operation requires the order's
	// items to be hydrated but none are attached.
	ErrOrderHasNoItems = errors.New("order has no items attached")
)

// Order is the aggregate root for a table's request. It owns the lifecycle
// from creation by a waiter, through the kitchen workflow on its items, to
// explicit delivery by the cashier.
//
// Order follows these invariants:
//   - Must have a positive unique identifier and a non-empty table label
//   - Is never created without at least one item
//   - Item statuses only move forward (pending -> preparing -> ready)
//   - Delivery requires every item to be ready
//   - Only status and cook assignment mutate after creation
type Order struct {
	// id is the unique identifier for the order
	id int64

	// table is the free-text table label, set at creation
	table string

	// status is the order-level delivery status
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// waiterID identifies the waiter who created the order
	waiterID int64

	// cookID identifies the cook handling the order (nil until assigned)
	cookID *int64

	// items are the order's lines, hydrated by the repository join
	items []*OrderItem

	// version is the optimistic concurrency token for stored updates
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in StatusPending at version 1 with the given
// items attached. Every item must already carry this order's id.
func NewOrder(id int64, table string, waiterID int64, createdAt time.Time, items []*OrderItem) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setWaiterID(waiterID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := o.attachItems(items); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Items may be empty
// when the caller does not hydrate them (listing views). Used only by
// repositories.
func RestoreOrder(
	id int64,
	table string,
	waiterID int64,
	cookID *int64,
	status Status,
	createdAt time.Time,
	version int64,
	items []*OrderItem,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setWaiterID(waiterID),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not greater than 0", version))
	}

	if cookID != nil && *cookID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"cookId", fmt.Errorf("%d is not greater than 0", *cookID))
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.OrderID() != id {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("item %d belongs to order %d, not %d", item.ID(), item.OrderID(), id))
		}
	}

	o.status = status
	o.version = version
	o.cookID = cookID
	o.items = items
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Table returns the table label the order was taken for.
func (o *Order) Table() string {
	return o.table
}

// Status returns the order-level delivery status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// WaiterID returns the identifier of the creating waiter.
func (o *Order) WaiterID() int64 {
	return o.waiterID
}

// Cook returns the assigned cook's identifier, or nil if unassigned.
func (o *Order) Cook() *int64 {
	return o.cookID
}

// Items returns the order's hydrated items. Empty when the order was loaded
// without the item join.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Version returns the optimistic concurrency token of the stored record.
func (o *Order) Version() int64 {
	return o.version
}

// AssignCook records the cook handling this order. Reassignment is allowed
// while the order is still pending.
func (o *Order) AssignCook(cookID int64) error {
	if cookID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cookId", fmt.Errorf("%d is not greater than 0", cookID))
	}
	if o.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot assign a cook to a %s order", o.status))
	}

	o.cookID = &cookID
	return nil
}

// StartPreparing is the kitchen's first action on an order: it assigns the
// cook and moves every item from pending to preparing in one step.
//
// The action is only permitted while all items are pending. A mixed item set
// means another cook already picked the order up, and the request is rejected.
func (o *Order) StartPreparing(cookID int64) error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}
	if !o.AllItemsPending() {
		return errs.NewValueIsInvalidErrorWithCause(
			"items", errors.New("start preparing requires every item to be pending"))
	}

	if err := o.AssignCook(cookID); err != nil {
		return err
	}

	for _, item := range o.items {
		if err := item.StartPreparing(); err != nil {
			return err
		}
	}
	return nil
}

// MarkReady moves every item from preparing to ready.
//
// The action is only permitted while all items are preparing; stragglers are
// never silently fast-forwarded from pending.
func (o *Order) MarkReady() error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}
	if !o.AllItemsPreparing() {
		return errs.NewValueIsInvalidErrorWithCause(
			"items", errors.New("mark ready requires every item to be preparing"))
	}

	for _, item := range o.items {
		if err := item.MarkReady(); err != nil {
			return err
		}
	}
	return nil
}

// Deliver transitions the order from pending to delivered. The readiness
// predicate (every item ready) is enforced here, so a client that skips the
// check cannot force an early delivery.
func (o *Order) Deliver() error {
	if !o.ReadyToDeliver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"items", errors.New("delivery requires every item to be ready"))
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AllItemsPending reports whether every attached item is still pending.
func (o *Order) AllItemsPending() bool {
	return o.allItemsIn(ItemPending)
}

// AllItemsPreparing reports whether every attached item is preparing.
func (o *Order) AllItemsPreparing() bool {
	return o.allItemsIn(ItemPreparing)
}

// ReadyToDeliver is the readiness predicate: every attached item is ready.
// Orders without hydrated items are never ready.
func (o *Order) ReadyToDeliver() bool {
	return o.allItemsIn(ItemReady)
}

func (o *Order) allItemsIn(status ItemStatus) bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if item.Status() != status {
			return false
		}
	}
	return true
}

func (o *Order) attachItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.OrderID() != o.id {
			return errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("item %d belongs to order %d, not %d", item.ID(), item.OrderID(), o.id))
		}
	}

	o.items = items
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setTable(table string) error {
	if table == "" {
		return errs.NewValueIsRequiredError("table")
	}
	o.table = table
	return nil
}

func (o *Order) setWaiterID(waiterID int64) error {
	if waiterID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"waiterId", fmt.Errorf("%d is not greater than 0", waiterID))
	}
	o.waiterID = waiterID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
