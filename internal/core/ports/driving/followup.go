package driving

import (
	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// FollowUpService answers free-text questions about a selected card.
type FollowUpService interface {
	// Answer classifies the question against the card's structured
	// content and returns one response string. History is read-only
	// input; the caller appends the question and the returned answer
	// to it after the call.
	Answer(card domain.AnswerCard, question string, history []domain.ConversationTurn) (string, error)
}
