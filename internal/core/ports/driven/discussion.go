package driven

import (
	"context"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// DiscussionRetriever fetches recent community posts for a query.
// Implementations own the network call, auth headers and the subreddit
// and time-window restrictions. A failure or timeout is the caller's
// business to treat as "zero posts"; the retriever just reports it.
type DiscussionRetriever interface {
	// Fetch returns zero or more posts matching the query text.
	Fetch(ctx context.Context, query string) ([]domain.ExternalPost, error)
}
