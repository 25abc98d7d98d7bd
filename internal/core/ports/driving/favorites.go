package driving

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// FavoritesService manages the player's saved answer cards.
type FavoritesService interface {
	// Save keeps a card for later.
	Save(ctx context.Context, card domain.AnswerCard) error

	// Remove deletes a saved card by (source, id).
	Remove(ctx context.Context, source domain.Source, id string) error

	// List returns all saved cards, most recently saved first.
	List(ctx context.Context) ([]domain.AnswerCard, error)
}
