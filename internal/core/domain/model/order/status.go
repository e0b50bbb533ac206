package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Status represents the delivery state of an order as a whole. It is distinct
// from the readiness of the order's items: an order whose items are all ready
// is still "pending" until the cashier explicitly delivers it.
//
// State transitions:
//
//	Pending ──> Delivered
//
// Delivered is a final state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is created.
	// The order stays pending through the whole kitchen workflow.
	StatusPending

	// StatusDelivered indicates the cashier has handed the order to the table.
	// This is a final state with no further transitions allowed.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusDelivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusDelivered: "delivered",
	}
}

// StatusFromString parses the persisted representation of a Status.
// Returns an error for anything other than "pending" or "delivered".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//
// Returns (Delivered, nil) on a valid transition, or an error if the order
// is already delivered or the status is invalid.
func (s Status) Deliver() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return StatusDelivered, nil
}
