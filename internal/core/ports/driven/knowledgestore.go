package driven

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// KnowledgeStore provides the curated knowledge entries.
// The table is loaded once at process start and is read-only at
// runtime; the core never writes to it.
type KnowledgeStore interface {
	// All returns every knowledge entry in table order.
	All(ctx context.Context) ([]domain.KnowledgeEntry, error)

	// Get returns the entry with the given ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.KnowledgeEntry, error)
}
