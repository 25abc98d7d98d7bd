// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and when persistence is disabled.
package memory

import (
	"context"
	"sync"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
)

// Ensure FavoriteStore implements the interface.
var _ driven.FavoriteStore = (*FavoriteStore)(nil)

type favoriteKey struct {
	source domain.Source
	id     string
}

// FavoriteStore is an in-memory implementation of driven.FavoriteStore.
type FavoriteStore struct {
	mu    sync.RWMutex
	cards map[favoriteKey]domain.AnswerCard
	order []favoriteKey
}

// NewFavoriteStore creates a new in-memory favorite store.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{
		cards: make(map[favoriteKey]domain.AnswerCard),
	}
}

// Save stores or overwrites a card. Overwriting counts as a fresh
// save, so the card moves to the front of List.
func (s *FavoriteStore) Save(_ context.Context, card domain.AnswerCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{source: card.Source, id: card.ID}
	if _, exists := s.cards[key]; exists {
		for i, k := range s.order {
			if k == key {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.order = append(s.order, key)
	s.cards[key] = card
	return nil
}

// Get retrieves a saved card by key.
func (s *FavoriteStore) Get(_ context.Context, source domain.Source, id string) (*domain.AnswerCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[favoriteKey{source: source, id: id}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &card, nil
}

// Delete removes a saved card by key.
func (s *FavoriteStore) Delete(_ context.Context, source domain.Source, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{source: source, id: id}
	if _, ok := s.cards[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.cards, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all saved cards, most recently saved first.
func (s *FavoriteStore) List(_ context.Context) ([]domain.AnswerCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.AnswerCard, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, s.cards[s.order[i]])
	}
	return result, nil
}
