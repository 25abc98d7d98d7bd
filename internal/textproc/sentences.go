package textproc

import "strings"

// SplitSentences turns cleaned text into an ordered sequence of
// polished sentences. A sentence boundary is whitespace immediately
// following a terminal mark (. ! ?); the mark stays with its sentence.
// Empty or whitespace-only pieces are dropped. Pure and deterministic.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		if isTerminal(text[i]) && isSpace(text[i+1]) {
			appendSentence(&sentences, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		appendSentence(&sentences, text[start:])
	}
	return sentences
}

func appendSentence(sentences *[]string, piece string) {
	polished := Polish(piece)
	if strings.TrimSpace(polished) != "" {
		*sentences = append(*sentences, polished)
	}
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
