package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// ItemStatus represents the kitchen-side state of a single order item.
//
// State transitions:
//
//	ItemPending ──> ItemPreparing ──> ItemReady
//
// The machine only moves forward, one step at a time. ItemReady is terminal.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending is the initial status of every item in a new order.
	ItemPending

	// ItemPreparing indicates the kitchen has started working on the item.
	ItemPreparing

	// ItemReady indicates the item is finished. Terminal state.
	ItemReady
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "unknown",
		ItemPending:       "pending",
		ItemPreparing:     "preparing",
		ItemReady:         "ready",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPending:   "pending",
		ItemPreparing: "preparing",
		ItemReady:     "ready",
	}
}

// ItemStatusFromString parses the persisted representation of an ItemStatus.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getValidItemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid item status", s))
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the persisted name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo validates a single forward step of the machine and returns the
// new status. Only pending->preparing and preparing->ready are permitted;
// skipping a phase or moving backwards is rejected.
func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	valid := (s == ItemPending && target == ItemPreparing) ||
		(s == ItemPreparing && target == ItemReady)
	if !valid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("item cannot move from %s to %s", s, target))
	}

	return target, nil
}

// StartPreparing transitions the status from ItemPending to ItemPreparing.
func (s ItemStatus) StartPreparing() (ItemStatus, error) {
	return s.TransitionTo(ItemPreparing)
}

// MarkReady transitions the status from ItemPreparing to ItemReady.
func (s ItemStatus) MarkReady() (ItemStatus, error) {
	return s.TransitionTo(ItemReady)
}
