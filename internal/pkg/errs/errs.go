package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures across the application.
// Each typed error below unwraps to one of these, so callers can use
// errors.Is to branch on the failure class without knowing the concrete type.
var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
	ErrVersionConflict = errors.New("version conflict")
)

// sanitize renders a value for inclusion in an error message,
// collapsing newlines so log lines stay single-line.
func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy its constraints.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionConflictError indicates that an update carried a stale version token:
// the stored record changed since the caller last read it. The caller is
// expected to refresh and retry.
type VersionConflictError struct {
	ParamName string
	ID        any
	Expected  int64
	Actual    int64
}

// NewVersionConflictError creates a VersionConflictError describing the stale update.
func NewVersionConflictError(paramName string, id any, expected, actual int64) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Expected: expected, Actual: actual}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s, expected version %d, actual version %d",
		ErrVersionConflict, e.ParamName, sanitize(e.ID), e.Expected, e.Actual)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
