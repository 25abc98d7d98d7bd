// Package ranking scores curated entries and live community posts
// against a query and decides which live posts are admissible.
package ranking

import (
	"sort"
	"strings"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/textproc"
)

// Local scoring weights. Each rule is independent and additive.
const (
	exactTitleScore   = 120
	aliasPhraseScore  = 80
	tokenOverlapScore = 12
)

// MaxResults is the number of candidates retained after ranking,
// shared by both the curated and live paths.
const MaxResults = 8

// ScoredEntry pairs a curated entry with its relevance score.
type ScoredEntry struct {
	Entry domain.KnowledgeEntry
	Score int
}

// EntryScore ranks a curated entry against a query:
//   - +120 if the normalized title exactly equals the normalized query
//   - +80 per alias whose normalized form is a substring of the query
//   - +12 per query token found in the entry's token set, counted once
//     per query token
//
// The curated path uses raw tokens; stemming is live-path only.
func EntryScore(entry domain.KnowledgeEntry, query string) int {
	normQuery := textproc.Normalize(query)
	score := 0

	if textproc.Normalize(entry.Title) == normQuery && normQuery != "" {
		score += exactTitleScore
	}

	for _, alias := range entry.Aliases {
		normAlias := textproc.Normalize(alias)
		if normAlias != "" && strings.Contains(normQuery, normAlias) {
			score += aliasPhraseScore
		}
	}

	entrySet := entryTokenSet(entry)
	for _, tok := range textproc.Tokenize(query) {
		if entrySet[tok] {
			score += tokenOverlapScore
		}
	}

	return score
}

// RankEntries scores every entry, drops zero scores, and returns up to
// MaxResults entries in descending score order. Ties keep the original
// table order.
func RankEntries(entries []domain.KnowledgeEntry, query string) []ScoredEntry {
	var candidates []ScoredEntry
	for _, entry := range entries {
		if score := EntryScore(entry, query); score > 0 {
			candidates = append(candidates, ScoredEntry{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > MaxResults {
		candidates = candidates[:MaxResults]
	}
	return candidates
}

// entryTokenSet collects the tokens of everything a query token may
// legitimately match: title, aliases, where/how text and tips.
func entryTokenSet(entry domain.KnowledgeEntry) map[string]bool {
	parts := []string{entry.Title, entry.Where, entry.How}
	parts = append(parts, entry.Aliases...)
	parts = append(parts, entry.Tips...)
	return textproc.TokenSet(textproc.Tokenize(strings.Join(parts, " ")))
}
