// Package order contains the domain model for restaurant orders and their
// line items.
//
// An Order is created by a waiter for a table with at least one OrderItem.
// Items move through the kitchen state machine (pending -> preparing ->
// ready) while the order itself stays pending until the cashier explicitly
// delivers it; delivery is gated on every item being ready.
//
// Both records carry a version counter used by the repositories as an
// optimistic concurrency token.
package order
