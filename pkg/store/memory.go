package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/robertoranon/gltf-transform/pkg/errors"
	"github.com/robertoranon/gltf-transform/pkg/io"
)

// MemoryStore is an in-memory snapshot store for development and testing.
// Unlike the document graph itself, the store may sit behind an HTTP
// surface, so access is guarded by a mutex.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Save stores a snapshot under name, replacing any previous record.
func (s *MemoryStore) Save(ctx context.Context, name string, snap io.Snapshot) error {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := Record{Name: name, CreatedAt: now, UpdatedAt: now, Snapshot: snap}
	if prev, ok := s.records[name]; ok {
		rec.CreatedAt = prev.CreatedAt
	}
	s.records[name] = rec
	return nil
}

// Load retrieves the record stored under name.
func (s *MemoryStore) Load(ctx context.Context, name string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok {
		return Record{}, errors.New(errors.ErrCodeSnapshotNotFound, "snapshot %q not found", name)
	}
	return rec, nil
}

// List returns all stored names in lexical order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Delete removes the record stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, name)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
