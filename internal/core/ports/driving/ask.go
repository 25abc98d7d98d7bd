package driving

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// AskService answers queries with ranked answer cards.
type AskService interface {
	// Ask runs one query through the curated or live path and returns
	// a non-empty sequence of answer cards. An empty query is rejected
	// with domain.ErrEmptyQuery.
	Ask(ctx context.Context, req domain.AskRequest) (*domain.AskResponse, error)
}
