// Package summarize builds mode-specific answer lines from free text.
// It is purely extractive: sentences are cleaned, polished, split and
// ranked by how many purpose-specific keyword groups they touch.
package summarize

import (
	"sort"
	"strings"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/textproc"
)

// Sentence quotas per purpose.
const (
	whereLimit = 2
	howLimit   = 2
	tipLimit   = 3
)

// Keyword groups per purpose. A sentence scores once per group that has
// ANY member present, not per keyword occurrence.
var (
	whereGroups = [][]string{
		{"where", "location", "located", "found", "find"},
		{"planet", "moon", "system", "galaxy", "station"},
		{"spawn", "drop", "loot"},
		{"vendor", "buy", "purchase", "trade", "sell"},
		{"coordinates", "portal", "glyph"},
	}
	howGroups = [][]string{
		{"how", "guide", "step"},
		{"craft", "build", "make", "combine", "refine"},
		{"use", "install", "activate", "charge"},
		{"need", "require", "cost"},
		{"farm", "collect", "gather", "harvest"},
	}
	tipGroups = [][]string{
		{"tip", "trick", "advice"},
		{"best", "fastest", "easiest", "efficient", "quick"},
		{"avoid", "careful", "warning", "remember"},
		{"save", "stack", "worth"},
		{"recommend", "suggest", "try"},
	}
)

// Fixed fallback lines guarantee every answer card has non-empty
// where/how/tip content even for degenerate input.
const (
	whereFallback = "No exact spot was called out, so explore nearby systems and keep your scanner busy."
	howFallback   = "No step-by-step was given, so check your crafting and refiner menus for a recipe."
	tipFallback   = "Keep inventory space free and save before you head out."
)

// Lines holds the extracted answer content for one post or entry.
type Lines struct {
	Where []string
	How   []string
	Tips  []string
}

// Extract runs the full pipeline over free text: clean, polish, split
// into sentences, then select the best sentences per purpose. Every
// field of the result is non-empty.
func Extract(text string) Lines {
	sentences := textproc.SplitSentences(textproc.Polish(textproc.Clean(text)))
	return Lines{
		Where: selectSentences(sentences, whereGroups, whereLimit, whereFallback),
		How:   selectSentences(sentences, howGroups, howLimit, howFallback),
		Tips:  selectSentences(sentences, tipGroups, tipLimit, tipFallback),
	}
}

// SummaryLine is the one-line live-path summary for a card: the first
// where sentence in where-to-find mode, else the first how sentence.
func SummaryLine(lines Lines, mode domain.Mode) string {
	if mode == domain.ModeWhere {
		return lines.Where[0]
	}
	return lines.How[0]
}

// selectSentences ranks sentences by keyword-group count, preserving
// relative order on ties, and returns up to limit of them. Sentences
// scoring 0 are used only to backfill when fewer than limit scored
// above 0. Empty input falls back to the fixed generic line.
func selectSentences(sentences []string, groups [][]string, limit int, fallback string) []string {
	if len(sentences) == 0 {
		return []string{fallback}
	}

	type ranked struct {
		index int
		score int
	}
	order := make([]ranked, len(sentences))
	for i, sentence := range sentences {
		order[i] = ranked{index: i, score: groupScore(sentence, groups)}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	if limit > len(order) {
		limit = len(order)
	}
	result := make([]string, limit)
	for i, r := range order[:limit] {
		result[i] = sentences[r.index]
	}
	return result
}

// groupScore counts how many keyword groups have at least one member
// present as a whole word in the sentence. The padding makes boundary
// matching uniform for first and last words.
func groupScore(sentence string, groups [][]string) int {
	norm := " " + textproc.Normalize(sentence) + " "
	score := 0
	for _, group := range groups {
		for _, word := range group {
			if strings.Contains(norm, " "+word+" ") {
				score++
				break
			}
		}
	}
	return score
}
