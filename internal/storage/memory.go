// Package storage provides entry registry implementations.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

// Compile-time interface check.
var _ domain.EntryStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory entry registry. Safe for concurrent access.
// Entries are insert-only: nothing is ever updated or removed.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*domain.Entry
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory entry registry.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*domain.Entry),
		log:     log,
	}
}

// Insert stores an entry under its name. It fails with
// domain.ErrAlreadyExists if the name is taken; the check and the write
// happen under the same lock.
func (s *MemoryStore) Insert(ctx context.Context, entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.Name]; ok {
		return fmt.Errorf("%w: %q", domain.ErrAlreadyExists, entry.Name)
	}
	s.entries[entry.Name] = entry
	s.log.Debug("inserted %s %q", entry.Kind, entry.Name)
	return nil
}

// Get retrieves an entry by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		s.log.Debug("entry not found: %q", name)
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Contains reports whether an entry with the given name exists.
func (s *MemoryStore) Contains(ctx context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[name]
	return ok
}

// List returns all entries sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	s.log.Debug("listing entries, count=%d", len(out))
	return out, nil
}
