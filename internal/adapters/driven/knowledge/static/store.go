// Package static provides the built-in curated knowledge table.
// The table is compiled in, loaded once and read-only at runtime.
package static

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.KnowledgeStore = (*Store)(nil)

// Store serves the curated entries.
type Store struct {
	entries []domain.KnowledgeEntry
}

// New creates the store over the built-in table.
func New() *Store {
	return &Store{entries: entries}
}

// All returns every entry in table order. The slice is copied so
// callers cannot mutate the table.
func (s *Store) All(_ context.Context) ([]domain.KnowledgeEntry, error) {
	out := make([]domain.KnowledgeEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(_ context.Context, id string) (*domain.KnowledgeEntry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			entry := s.entries[i]
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}
