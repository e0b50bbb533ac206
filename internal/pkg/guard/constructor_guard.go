// Package guard implements a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was built through its designated constructor or left as a zero
// value, so invariants established during construction can be trusted later.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value always fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state. Call this
// from the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was properly constructed.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
