// Package redis implements the key-value substrate port on a Redis server.
// Keys map directly to Redis keys; prefix scans use SCAN with a MATCH
// pattern and counters use INCR, which makes identifier allocation atomic.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	goredis "github.com/redis/go-redis/v9"

	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// KVStore implements ports.KVStore backed by a Redis client.
type KVStore struct {
	client *goredis.Client
}

// NewKVStore creates a Redis-backed key-value store.
func NewKVStore(client *goredis.Client) *KVStore {
	return &KVStore{client: client}
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, errs.NewObjectNotFoundError("key", key)
		}
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key without expiry.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are ignored.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// ScanByPrefix collects every record whose key starts with prefix, ordered
// by key. Values are fetched in one MGET after the scan; keys deleted
// between the two steps are skipped.
func (s *KVStore) ScanByPrefix(ctx context.Context, prefix string) ([]ports.KeyValue, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %q: %w", prefix, err)
	}

	if len(keys) == 0 {
		return []ports.KeyValue{}, nil
	}
	sort.Strings(keys)

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	records := make([]ports.KeyValue, 0, len(keys))
	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			continue
		}
		records = append(records, ports.KeyValue{Key: keys[i], Value: []byte(str)})
	}
	return records, nil
}

// Increment atomically increments the counter under key via INCR.
func (s *KVStore) Increment(ctx context.Context, key string) (int64, error) {
	next, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %q: %w", key, err)
	}
	return next, nil
}
