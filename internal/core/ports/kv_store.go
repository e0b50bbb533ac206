// Package ports defines the outbound interfaces of the core: the key-value
// persistence substrate and the repositories built on top of it. Adapters
// under internal/adapters/out provide the implementations.
package ports

import (
	"context"
)

// KeyValue is one record returned by a prefix scan.
type KeyValue struct {
	Key   string
	Value []byte
}

// KVStore is the persistence substrate contract. It offers atomic single-key
// operations and prefix scans only: there are no multi-key transactions, so
// every multi-record operation above this port is a sequence of independent
// writes that can be partially applied on failure.
type KVStore interface {
	// Get returns the value stored under key. Returns an error unwrapping to
	// errs.ErrObjectNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// ScanByPrefix returns all records whose key starts with prefix,
	// ordered by key.
	ScanByPrefix(ctx context.Context, prefix string) ([]KeyValue, error)

	// Increment atomically increments the counter stored under key and
	// returns the new value. A missing counter starts at zero, so the first
	// call returns 1.
	Increment(ctx context.Context, key string) (int64, error)
}
