// Package storage provides persistence backends for scan records.
//
// Two backends are available: MemoryBackend for tests and ephemeral
// deployments, and SQLiteBackend for durable single-instance storage.
// Both satisfy Backend and are safe for concurrent use.
package storage

import (
	"context"
	"errors"
	"time"

	"adlint-hq/saturn/pkg/evidence"
)

// ErrNotFound indicates a record lookup for an unknown ID.
var ErrNotFound = errors.New("record not found")

// Backend stores scan records.
type Backend interface {
	// Save persists a record. Records are immutable; saving an existing
	// ID is an error.
	Save(ctx context.Context, record *evidence.Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*evidence.Record, error)

	// List returns records matching the query, newest first.
	List(ctx context.Context, query evidence.Query) ([]*evidence.Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// DeleteBefore removes records older than the cutoff and returns the
	// number deleted.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases backend resources.
	Close() error
}
