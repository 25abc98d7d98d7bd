package services

import (
	"context"
	"fmt"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driving"
)

// Ensure FavoritesService implements the interface.
var _ driving.FavoritesService = (*FavoritesService)(nil)

// FavoritesService manages saved answer cards on top of a FavoriteStore.
type FavoritesService struct {
	store driven.FavoriteStore
}

// NewFavoritesService creates the favorites service.
func NewFavoritesService(store driven.FavoriteStore) *FavoritesService {
	return &FavoritesService{store: store}
}

// Save keeps a card for later.
func (s *FavoritesService) Save(ctx context.Context, card domain.AnswerCard) error {
	if card.ID == "" {
		return fmt.Errorf("save favorite: %w", domain.ErrInvalidInput)
	}
	if err := s.store.Save(ctx, card); err != nil {
		return fmt.Errorf("save favorite: %w", err)
	}
	return nil
}

// Remove deletes a saved card by (source, id).
func (s *FavoritesService) Remove(ctx context.Context, source domain.Source, id string) error {
	if err := s.store.Delete(ctx, source, id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// List returns all saved cards, most recently saved first.
func (s *FavoritesService) List(ctx context.Context) ([]domain.AnswerCard, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return cards, nil
}
