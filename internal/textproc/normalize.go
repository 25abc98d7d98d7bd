// Package textproc provides the text canonicalisation, link stripping
// and sentence splitting used uniformly across scoring and summarisation.
package textproc

import "strings"

// Normalize canonicalises free text for scoring: lower-cases, replaces
// every character outside [a-z0-9] and whitespace with a space,
// collapses runs of whitespace and trims. Idempotent.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits the canonical form of text on whitespace and drops
// tokens of length <= 1. Total over any input; empty input yields an
// empty slice.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// StemTokens applies the naive suffix stripper used on the live path.
// Tokens longer than 4 characters ending in "es" drop the trailing
// "es"; tokens longer than 3 characters ending in "s" drop the
// trailing "s". The curated path deliberately skips this pass; the live
// scoring thresholds assume the asymmetry.
func StemTokens(tokens []string) []string {
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stemmed[i] = stem(tok)
	}
	return stemmed
}

func stem(tok string) string {
	if len(tok) > 4 && strings.HasSuffix(tok, "es") {
		return tok[:len(tok)-2]
	}
	if len(tok) > 3 && strings.HasSuffix(tok, "s") {
		return tok[:len(tok)-1]
	}
	return tok
}

// TokenSet builds a membership set from tokens.
func TokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
