package ranking

import (
	"math"
	"strings"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/textproc"
)

// Live scoring weights. The quality score is a weighted sum; it may go
// negative and is only filtered downstream.
const (
	titleOverlapWeight = 10
	bodyOverlapWeight  = 4
	modeTitleWeight    = 3
	modeBodyWeight     = 1.5
	engagementWeight   = 2
	substanceBonus     = 1
	topicalBonus       = 2
	metaPenalty        = 4

	// substanceMinBody is the body length below which a post is treated
	// as link-only or image-only and loses the substance bonus.
	substanceMinBody = 60
)

// Fixed mode-keyword vocabularies.
var (
	howToKeywords = []string{
		"how", "craft", "build", "farm", "route",
		"method", "loop", "efficient", "best", "guide",
	}
	whereKeywords = []string{
		"where", "find", "location", "planet", "system",
		"station", "spawn", "drop", "vendor",
	}
)

// topicalVocab is the domain-relevance gate: the game's name variants,
// its abbreviation, and four in-universe proper nouns. Posts mentioning
// none of these are likely off-topic forum noise.
var topicalVocab = []string{
	"no man's sky", "no mans sky", "nms",
	"atlas", "sentinel", "anomaly", "nexus",
}

// metaVocab marks release/announcement/media posts that crowd out
// actual gameplay answers. The penalty is waived when the query itself
// asks for that content.
var metaVocab = []string{
	"update", "patch", "release", "announcement", "trailer", "teaser",
}

// PostScore computes the signed quality score of a live post against
// stemmed query tokens and a mode. Overlap counts query tokens present
// in the stemmed token set of the respective field.
func PostScore(post domain.ExternalPost, queryTokens []string, mode domain.Mode) float64 {
	titleSet := stemmedSet(post.Title)
	bodySet := stemmedSet(post.Body)

	score := float64(countIn(queryTokens, titleSet)) * titleOverlapWeight
	score += float64(countIn(queryTokens, bodySet)) * bodyOverlapWeight

	modeWords := howToKeywords
	if mode == domain.ModeWhere {
		modeWords = whereKeywords
	}
	score += float64(countIn(modeWords, titleSet)) * modeTitleWeight
	score += float64(countIn(modeWords, bodySet)) * modeBodyWeight

	// Engagement bonus: log-dampened so popular posts win without
	// linear dominance.
	engagement := math.Max(float64(post.Score+post.Comments), 0)
	score += math.Log10(engagement+1) * engagementWeight

	if len(post.Body) >= substanceMinBody {
		score += substanceBonus
	}

	combined := strings.ToLower(post.Title + " " + post.Body + " " + post.Forum)
	if containsAny(combined, topicalVocab) {
		score += topicalBonus
	}

	if containsAny(strings.ToLower(post.Title), metaVocab) &&
		!containsAny(strings.ToLower(strings.Join(queryTokens, " ")), metaVocab) {
		score -= metaPenalty
	}

	return score
}

// QueryTokens tokenizes and stems a query for the live path.
func QueryTokens(query string) []string {
	return textproc.StemTokens(textproc.Tokenize(query))
}

func stemmedSet(text string) map[string]bool {
	return textproc.TokenSet(textproc.StemTokens(textproc.Tokenize(text)))
}

func countIn(tokens []string, set map[string]bool) int {
	count := 0
	for _, tok := range tokens {
		if set[tok] {
			count++
		}
	}
	return count
}

func containsAny(text string, vocab []string) bool {
	for _, term := range vocab {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
