// Package db defines the backend facade the repositories are written against.
package db

import (
	"context"
	"time"
)

// Record is the raw document shape exchanged with the backing collection.
type Record struct {
	Key     string         `json:"_key,omitempty"`
	Content string         `json:"content"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Store is the backend facade combining all sub-interfaces.
// Consumers use the narrow sub-interfaces (ISP).
type Store interface {
	Pinger
	RecordStore
	QueryRunner
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RecordStore provides document operations against the bound collection.
type RecordStore interface {
	// Insert creates records, returning the keys of those created. A duplicate
	// key surfaces ErrKeyExists after the preceding records were written.
	Insert(ctx context.Context, records []Record) ([]string, error)
	Read(ctx context.Context, key string) (Record, error)
	// Update patches records by key with merge semantics and returns the
	// number actually written; records missing from the collection are
	// skipped, not errors.
	Update(ctx context.Context, records []Record) (int, error)
	// Remove deletes records by key. With ignoreMissing, absent keys are
	// silently skipped; otherwise the first absent key surfaces ErrKeyNotFound.
	Remove(ctx context.Context, keys []string, ignoreMissing bool) error
	Exists(ctx context.Context, key string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// QueryRunner executes an AQL query and drains its cursor.
type QueryRunner interface {
	Query(ctx context.Context, query string, bindVars map[string]any) ([]Record, error)
}
