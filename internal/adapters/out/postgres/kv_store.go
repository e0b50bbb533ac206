// Package postgres implements the key-value substrate port on PostgreSQL via
// GORM. Records live in a single two-column table keyed by the record key,
// mirroring the schemaless layout of the original deployment; prefix scans
// are LIKE queries and counters live in a separate sequence table updated
// with an atomic upsert.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// KVRecord is the database row for one key-value pair.
type KVRecord struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value []byte `gorm:"type:bytea"`
}

// TableName specifies the database table name for key-value records.
func (KVRecord) TableName() string {
	return "kv_records"
}

// SequenceRecord is the database row for one named counter.
type SequenceRecord struct {
	Name  string `gorm:"primaryKey;size:255"`
	Value int64
}

// TableName specifies the database table name for counters.
func (SequenceRecord) TableName() string {
	return "kv_sequences"
}

// KVStore implements ports.KVStore backed by PostgreSQL.
type KVStore struct {
	db *gorm.DB
}

// NewKVStore creates a PostgreSQL-backed key-value store.
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

// InitSchema creates the backing tables if they do not exist.
func (s *KVStore) InitSchema() error {
	if err := s.db.AutoMigrate(&KVRecord{}, &SequenceRecord{}); err != nil {
		return fmt.Errorf("failed to migrate kv tables: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record KVRecord
	if err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("key", key)
		}
		return nil, err
	}
	return record.Value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	record := KVRecord{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&record).Error
}

// Delete removes key. Missing keys are ignored.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVRecord{}, "key = ?", key).Error
}

// ScanByPrefix returns all records whose key starts with prefix, ordered by key.
func (s *KVStore) ScanByPrefix(ctx context.Context, prefix string) ([]ports.KeyValue, error) {
	var records []KVRecord
	if err := s.db.WithContext(ctx).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Order("key").
		Find(&records).Error; err != nil {
		return nil, err
	}

	result := make([]ports.KeyValue, 0, len(records))
	for _, record := range records {
		result = append(result, ports.KeyValue{Key: record.Key, Value: record.Value})
	}
	return result, nil
}

// Increment atomically increments the named counter and returns the new
// value. The upsert runs as a single statement, so concurrent callers never
// observe the same value.
func (s *KVStore) Increment(ctx context.Context, key string) (int64, error) {
	var next int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO kv_sequences (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = kv_sequences.value + 1
		RETURNING value
	`, key).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// escapeLike escapes the LIKE metacharacters in a key prefix.
func escapeLike(prefix string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(prefix)
}
