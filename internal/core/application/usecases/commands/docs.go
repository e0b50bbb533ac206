// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: a validated command
// object created through a constructor, and a handler that loads the
// aggregate, applies the domain transition and persists the result.
//
// The key-value substrate has no transactions; handlers write records one by
// one and rely on version tokens to reject writes that lost a race.
package commands
