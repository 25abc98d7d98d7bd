package driven

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// FavoriteStore persists answer cards the player chose to keep.
// Favorites are keyed by (source label, card identifier).
type FavoriteStore interface {
	// Save stores a card. Saving an existing key overwrites it.
	Save(ctx context.Context, card domain.AnswerCard) error

	// Get retrieves a saved card by key.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, source domain.Source, id string) (*domain.AnswerCard, error)

	// Delete removes a saved card by key.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, source domain.Source, id string) error

	// List returns all saved cards, most recently saved first.
	List(ctx context.Context) ([]domain.AnswerCard, error)
}
