package textproc

import (
	"regexp"
	"strings"
)

// Pre-compiled expressions for link stripping and polishing.
var (
	markdownLink  = regexp.MustCompile(`\[[^\]]*\]\(\s*(?:https?://|www\.)[^)]*\)`)
	bareURL       = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	markupChars   = regexp.MustCompile("[*_`>#~]")
	pipeRuns      = regexp.MustCompile(`\s*\|+\s*`)
	dashRuns      = regexp.MustCompile(`\s*-{2,}\s*`)
	repeatedPunct = regexp.MustCompile(`([!?.,])(?:\s*[!?.,])+`)
	spacedPunct   = regexp.MustCompile(`\s+([!?.,:;])`)
)

// StripLinks removes markdown-style [label](url) spans whose URL starts
// with http(s):// or www., then any remaining bare URL token. The
// output contains no URL-like substrings; every string the engine
// emits passes through here. Idempotent.
func StripLinks(text string) string {
	text = markdownLink.ReplaceAllString(text, " ")
	text = collapseWhitespace(text)
	text = bareURL.ReplaceAllString(text, " ")
	return collapseWhitespace(text)
}

// Clean strips links, decodes the &amp; entity, removes markup
// emphasis characters and folds newlines into spaces.
func Clean(text string) string {
	text = StripLinks(text)
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = markupChars.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return collapseWhitespace(text)
}

// Polish cleans text and then tidies punctuation for display: pipes and
// dash runs become a single " - ", repeated punctuation collapses to
// one mark, and stray whitespace before punctuation is removed.
func Polish(text string) string {
	text = Clean(text)
	text = pipeRuns.ReplaceAllString(text, " - ")
	text = dashRuns.ReplaceAllString(text, " - ")
	text = repeatedPunct.ReplaceAllString(text, "$1")
	text = spacedPunct.ReplaceAllString(text, "$1")
	return collapseWhitespace(text)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
