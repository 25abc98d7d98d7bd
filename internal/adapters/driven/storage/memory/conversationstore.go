package memory

import (
	"context"
	"sync"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
)

// Ensure ConversationStore implements the interface.
var _ driven.ConversationStore = (*ConversationStore)(nil)

// ConversationStore is an in-memory implementation of
// driven.ConversationStore.
type ConversationStore struct {
	mu    sync.RWMutex
	turns map[string][]domain.ConversationTurn
}

// NewConversationStore creates a new in-memory conversation store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		turns: make(map[string][]domain.ConversationTurn),
	}
}

// Append adds one turn to a card's conversation.
func (s *ConversationStore) Append(_ context.Context, cardID string, turn domain.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[cardID] = append(s.turns[cardID], turn)
	return nil
}

// History returns a card's turns in append order.
func (s *ConversationStore) History(_ context.Context, cardID string) ([]domain.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[cardID]
	out := make([]domain.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}
