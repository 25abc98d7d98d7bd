package ranking

import (
	"sort"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/textproc"
)

// QualityThreshold is the minimum quality score a live post needs to be
// admissible, independent of token overlap. The boundary is exact:
// 7.0 is admitted, anything below is not.
const QualityThreshold = 7.0

// ScoredPost pairs a live post with its quality score.
type ScoredPost struct {
	Post  domain.ExternalPost
	Score float64
}

// FilterPosts admits scored posts, orders them by quality, removes
// near-duplicates by normalized title and caps the result at
// MaxResults.
//
// Admission is asymmetric between single- and multi-token queries: a
// single strong title match is enough on its own, while a post lacking
// a title hit must substantially exceed minimum body coverage to
// qualify. Raw overlap alone would admit tangentially related posts.
func FilterPosts(scored []ScoredPost, queryTokens []string) []ScoredPost {
	admitted := make([]ScoredPost, 0, len(scored))
	for _, sp := range scored {
		if admissible(sp, queryTokens) {
			admitted = append(admitted, sp)
		}
	}

	sort.SliceStable(admitted, func(i, j int) bool {
		return admitted[i].Score > admitted[j].Score
	})

	return dedupeByTitle(admitted)
}

func admissible(sp ScoredPost, queryTokens []string) bool {
	if sp.Score < QualityThreshold {
		return false
	}

	titleSet := stemmedSet(sp.Post.Title)
	titleHit := countIn(queryTokens, titleSet) > 0

	if len(queryTokens) <= 1 {
		// Single-token query: a title hit plus the quality threshold is
		// sufficient; no body-coverage requirement.
		return titleHit
	}

	combinedSet := stemmedSet(sp.Post.Title + " " + sp.Post.Body)
	overlap := countIn(queryTokens, combinedSet)
	minCoverage := (len(queryTokens) + 1) / 2 // ceil(n * 0.5)

	if overlap < minCoverage {
		return false
	}
	return titleHit || overlap >= minCoverage+1
}

// dedupeByTitle keeps the first occurrence of each normalized title in
// sorted order. A post with an empty normalized title is kept only if
// it is the very first item overall.
func dedupeByTitle(posts []ScoredPost) []ScoredPost {
	seen := make(map[string]bool, len(posts))
	result := make([]ScoredPost, 0, len(posts))
	for i, sp := range posts {
		key := textproc.Normalize(sp.Post.Title)
		if key == "" {
			if i != 0 {
				continue
			}
		} else if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, sp)
		if len(result) == MaxResults {
			break
		}
	}
	return result
}
