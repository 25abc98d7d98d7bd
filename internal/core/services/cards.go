package services

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/summarize"
	"github.com/TonyLeary/nms-companion/internal/textproc"
)

// Detail block prefixes. The follow-up dispatcher parses these back
// out, so the builder is the only place allowed to define them.
const (
	wherePrefix = "Where to find: "
	howPrefix   = "How to use: "
	tipsHeader  = "Tips:"
	tipBullet   = "- "
)

// CardFromEntry maps a curated entry to the uniform card shape. The
// curated text is already structured, so no summarisation runs.
func CardFromEntry(entry domain.KnowledgeEntry, mode domain.Mode) domain.AnswerCard {
	summary := entry.How
	if mode == domain.ModeWhere {
		summary = entry.Where
	}
	return domain.AnswerCard{
		ID:             entry.ID,
		Title:          entry.Title,
		Summary:        summary,
		Details:        formatDetails(entry.Where, entry.How, entry.Tips),
		Source:         domain.SourceGuide,
		References:     entry.References,
		CommunityNotes: entry.CommunityNotes,
		FAQ:            entry.FAQ,
		Storyboard:     entry.Storyboard,
	}
}

// CardFromPost summarises a live post into the uniform card shape.
// Every string field has passed through the link stripper.
func CardFromPost(post domain.ExternalPost, mode domain.Mode) domain.AnswerCard {
	lines := summarize.Extract(post.Body)
	return domain.AnswerCard{
		ID:      post.ID,
		Title:   textproc.Polish(post.Title),
		Summary: summarize.SummaryLine(lines, mode),
		Details: formatDetails(
			strings.Join(lines.Where, " "),
			strings.Join(lines.How, " "),
			lines.Tips,
		),
		Source: domain.SourceReddit,
		References: []string{
			fmt.Sprintf("Posted by u/%s on r/%s", post.Author, post.Forum),
			fmt.Sprintf("Community score %d with %d comments", post.Score, post.Comments),
		},
	}
}

// NoMatchCard is the deterministic zero-candidate result. Its
// identifier is a pure function of the normalized query, so repeated
// identical failed queries produce an identical card.
func NoMatchCard(query string, mode domain.Mode) domain.AnswerCard {
	norm := textproc.Normalize(query)
	h := fnv.New32a()
	h.Write([]byte(norm))

	details := strings.Join([]string{
		"Nothing matched this query. A few things to try:",
		tipBullet + "Use the item's full in-game name, e.g. \"radiant heart\" or \"salvaged data\".",
		tipBullet + "Switch mode: ask where-to-find instead of how-to, or the other way round.",
		tipBullet + "Try the other source: the guide and the community feed cover different ground.",
		tipBullet + "Drop filler words and keep the query to the item name.",
	}, "\n")

	return domain.AnswerCard{
		ID:      fmt.Sprintf("no-match-%08x", h.Sum32()),
		Title:   fmt.Sprintf("No answer yet for %q (%s)", query, mode.Label()),
		Summary: "Nothing in the guide or the recent community posts matched this query.",
		Details: details,
		Source:  domain.SourceGuide,
		References: []string{
			"All answers are built locally from the guide and recent community posts",
			"No outbound links are ever included",
		},
		CommunityNotes: []string{
			"Results stay on this device; nothing about your query leaves the app.",
		},
	}
}

// formatDetails assembles the multi-line details block shared by both
// paths.
func formatDetails(where, how string, tips []string) string {
	var b strings.Builder
	b.WriteString(wherePrefix + where + "\n")
	b.WriteString(howPrefix + how + "\n")
	b.WriteString(tipsHeader)
	for _, tip := range tips {
		b.WriteString("\n" + tipBullet + tip)
	}
	return b.String()
}

// detailLine pulls one prefixed line back out of a details block.
// Returns the empty string when the prefix is absent.
func detailLine(details, prefix string) string {
	for _, line := range strings.Split(details, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}

// detailTips pulls the bulleted tip lines back out of a details block.
func detailTips(details string) []string {
	var tips []string
	inTips := false
	for _, line := range strings.Split(details, "\n") {
		switch {
		case line == tipsHeader:
			inTips = true
		case inTips && strings.HasPrefix(line, tipBullet):
			tips = append(tips, line)
		case inTips:
			inTips = false
		}
	}
	return tips
}
