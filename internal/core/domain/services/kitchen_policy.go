package services

import (
	"comanda/internal/core/domain/model/order"
)

// KitchenAction enumerates what a cook is currently permitted to do with an
// order, derived from the states of its items.
type KitchenAction int

const (
	// ActionNone means no kitchen action is currently permitted. This covers
	// mixed item-state sets: the policy deliberately refuses to fast-forward
	// straggling items, so a partially advanced order offers no action until
	// its items converge.
	ActionNone KitchenAction = iota

	// ActionStartPreparing is offered while every item is still pending.
	ActionStartPreparing

	// ActionMarkReady is offered while every item is preparing.
	ActionMarkReady
)

// String returns a short name for logging and API responses.
func (a KitchenAction) String() string {
	switch a {
	case ActionStartPreparing:
		return "start_preparing"
	case ActionMarkReady:
		return "mark_ready"
	default:
		return "none"
	}
}

// KitchenPolicy is a domain service that encodes the order-handling contract
// of the kitchen actor.
//
// Business rules:
//   - All items pending: "start preparing" assigns the cook and moves every
//     item to preparing in one step.
//   - All items preparing: "mark ready" moves every item to ready.
//   - Any other mix: no action. The order waits until its items converge
//     (e.g. through per-item updates) rather than skipping a phase.
type KitchenPolicy struct{}

// NewKitchenPolicy creates a new KitchenPolicy instance.
func NewKitchenPolicy() KitchenPolicy {
	return KitchenPolicy{}
}

// PermittedAction returns the single kitchen action currently allowed on the
// order. The order must have its items hydrated; an order without items
// offers no action.
func (p KitchenPolicy) PermittedAction(o *order.Order) KitchenAction {
	if o == nil || len(o.Items()) == 0 {
		return ActionNone
	}
	if o.Status() != order.StatusPending {
		return ActionNone
	}

	switch {
	case o.AllItemsPending():
		return ActionStartPreparing
	case o.AllItemsPreparing():
		return ActionMarkReady
	default:
		return ActionNone
	}
}

// IsActiveForKitchen reports whether the order belongs in the cook's queue:
// still pending and not fully ready. Fully ready orders are handed off to
// the cashier and disappear from the kitchen view.
func (p KitchenPolicy) IsActiveForKitchen(o *order.Order) bool {
	if o == nil || len(o.Items()) == 0 {
		return false
	}
	return o.Status() == order.StatusPending && !o.ReadyToDeliver()
}
