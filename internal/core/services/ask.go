// Package services implements the driving ports against the driven
// ports. All scoring, filtering and summarisation in here is pure and
// per-request; the only operation that may suspend is the live fetch.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driving"
	"github.com/TonyLeary/nms-companion/internal/logger"
	"github.com/TonyLeary/nms-companion/internal/ranking"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// DefaultFetchTimeout bounds the live-post retrieval. Hitting it is a
// soft failure: the pipeline proceeds as if zero posts were returned.
const DefaultFetchTimeout = 8 * time.Second

// AskService answers queries from the curated table or a live snapshot
// of community posts. It holds no per-request state; concurrent calls
// need no coordination.
type AskService struct {
	knowledge    driven.KnowledgeStore
	discussion   driven.DiscussionRetriever
	fetchTimeout time.Duration
}

// NewAskService creates the ask service. The discussion retriever is
// optional (can be nil); without it the live path degrades to the
// no-match card.
func NewAskService(knowledge driven.KnowledgeStore, discussion driven.DiscussionRetriever) *AskService {
	return &AskService{
		knowledge:    knowledge,
		discussion:   discussion,
		fetchTimeout: DefaultFetchTimeout,
	}
}

// SetFetchTimeout overrides the live retrieval time budget.
func (s *AskService) SetFetchTimeout(d time.Duration) {
	if d > 0 {
		s.fetchTimeout = d
	}
}

// Ask runs one query through the selected path. The response always
// carries at least one card; a zero-candidate outcome produces the
// deterministic no-match card, never an error.
func (s *AskService) Ask(ctx context.Context, req domain.AskRequest) (*domain.AskResponse, error) {
	logger.Section("Ask")
	logger.Debug("Query: %q, mode: %s, source: %s", req.Query, req.Mode, req.Source)

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	var cards []domain.AnswerCard
	var err error
	if req.Source == domain.SourceReddit {
		cards, err = s.askLive(ctx, query, req.Mode)
	} else {
		cards, err = s.askCurated(ctx, query, req.Mode)
	}
	if err != nil {
		return nil, err
	}

	if len(cards) == 0 {
		logger.Info("No candidates survived, building no-match card")
		cards = []domain.AnswerCard{NoMatchCard(query, req.Mode)}
	}

	return &domain.AskResponse{
		Query: req.Query,
		Mode:  req.Mode,
		Cards: cards,
	}, nil
}

// askCurated ranks the knowledge table and maps the winners to cards.
func (s *AskService) askCurated(ctx context.Context, query string, mode domain.Mode) ([]domain.AnswerCard, error) {
	entries, err := s.knowledge.All(ctx)
	if err != nil {
		return nil, err
	}

	candidates := ranking.RankEntries(entries, query)
	logger.Debug("Curated candidates: %d of %d entries", len(candidates), len(entries))

	cards := make([]domain.AnswerCard, 0, len(candidates))
	for _, c := range candidates {
		cards = append(cards, CardFromEntry(c.Entry, mode))
	}
	return cards, nil
}

// askLive fetches, scores, filters and summarises community posts.
// Retrieval failure or timeout is recovered locally as "zero posts".
func (s *AskService) askLive(ctx context.Context, query string, mode domain.Mode) ([]domain.AnswerCard, error) {
	posts := s.fetchPosts(ctx, query)

	queryTokens := ranking.QueryTokens(query)
	scored := make([]ranking.ScoredPost, 0, len(posts))
	for _, post := range posts {
		if !post.Valid() {
			// Malformed upstream fragment, not a candidate.
			continue
		}
		scored = append(scored, ranking.ScoredPost{
			Post:  post,
			Score: ranking.PostScore(post, queryTokens, mode),
		})
	}

	admitted := ranking.FilterPosts(scored, queryTokens)
	logger.Debug("Live posts: %d fetched, %d scored, %d admitted", len(posts), len(scored), len(admitted))

	cards := make([]domain.AnswerCard, 0, len(admitted))
	for _, sp := range admitted {
		cards = append(cards, CardFromPost(sp.Post, mode))
	}
	return cards, nil
}

// fetchPosts retrieves live posts within the fetch time budget. Any
// error is logged and swallowed; there is no retry within a request.
func (s *AskService) fetchPosts(ctx context.Context, query string) []domain.ExternalPost {
	if s.discussion == nil {
		logger.Warn("No discussion retriever configured: %v", domain.ErrRetrievalUnavailable)
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	posts, err := s.discussion.Fetch(fetchCtx, query)
	if err != nil {
		logger.Warn("Live fetch failed, treating as zero posts: %v", err)
		return nil
	}
	return posts
}
