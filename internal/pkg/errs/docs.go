// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The error classes map onto the failure taxonomy of the order service:
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures,
//     rejected before any write happens
//   - ObjectNotFoundError: a referenced order, item, product, or user is absent
//   - VersionConflictError: an optimistic update raced a concurrent writer
//
// Each error type follows the same shape: a sentinel error variable, a struct
// type with detail fields, constructors with and without cause, Error() for
// formatting, and Unwrap() so errors.Is works against the sentinel.
package errs
