package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"adlint-hq/saturn/pkg/evidence"
)

// MemoryBackend stores records in memory. It is intended for tests and
// ephemeral deployments; records do not survive a restart.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string]*evidence.Record
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string]*evidence.Record),
	}
}

// Save persists a record.
func (m *MemoryBackend) Save(ctx context.Context, record *evidence.Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.ID == "" {
		return fmt.Errorf("record ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		return fmt.Errorf("record %s already exists", record.ID)
	}

	// Store a copy so callers cannot mutate stored state.
	stored := *record
	m.records[record.ID] = &stored
	return nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (m *MemoryBackend) Get(ctx context.Context, id string) (*evidence.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}

	out := *record
	return &out, nil
}

// List returns records matching the query, newest first.
func (m *MemoryBackend) List(ctx context.Context, query evidence.Query) ([]*evidence.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*evidence.Record
	for _, record := range m.records {
		if query.Kind != "" && record.Kind != query.Kind {
			continue
		}
		if !query.Since.IsZero() && record.Timestamp.Before(query.Since) {
			continue
		}
		out := *record
		matched = append(matched, &out)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	return matched, nil
}

// Count returns the total number of stored records.
func (m *MemoryBackend) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.records)), nil
}

// DeleteBefore removes records older than the cutoff.
func (m *MemoryBackend) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for id, record := range m.records {
		if record.Timestamp.Before(cutoff) {
			delete(m.records, id)
			deleted++
		}
	}

	return deleted, nil
}

// Close is a no-op for the in-memory backend.
func (m *MemoryBackend) Close() error {
	return nil
}
