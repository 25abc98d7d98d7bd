package driven

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// ConversationStore persists per-card follow-up conversations.
// The turn sequence for a card is append-only. The ranking engine never
// touches this store; it belongs to the presentation side.
type ConversationStore interface {
	// Append adds one turn to a card's conversation.
	Append(ctx context.Context, cardID string, turn domain.ConversationTurn) error

	// History returns a card's turns in append order.
	History(ctx context.Context, cardID string) ([]domain.ConversationTurn, error)
}
