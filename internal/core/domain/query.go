package domain

import "strings"

// Mode is the answer intent a query and its resulting cards are framed for.
type Mode string

const (
	// ModeHowTo answers "how do I get/craft/use this" questions.
	ModeHowTo Mode = "howto"
	// ModeWhere answers "where do I find this" questions.
	ModeWhere Mode = "where"
)

// ParseMode resolves a request mode token.
// "where" selects where-to-find; anything else defaults to how-to.
func ParseMode(token string) Mode {
	if strings.TrimSpace(strings.ToLower(token)) == string(ModeWhere) {
		return ModeWhere
	}
	return ModeHowTo
}

// Label returns the human-readable form of the mode.
func (m Mode) Label() string {
	if m == ModeWhere {
		return "where-to-find"
	}
	return "how-to"
}

// Source identifies which path produced an answer card.
type Source string

const (
	// SourceGuide is the curated knowledge-base path.
	SourceGuide Source = "guide"
	// SourceReddit is the live community-post path.
	SourceReddit Source = "reddit"
)

// ParseSource resolves a request source token.
// "reddit" selects the live path; anything else defaults to the guide.
func ParseSource(token string) Source {
	if strings.TrimSpace(strings.ToLower(token)) == string(SourceReddit) {
		return SourceReddit
	}
	return SourceGuide
}

// AskRequest is a single-shot question posed to the engine.
// The query text is normalized and tokenized on every scoring pass,
// never cached.
type AskRequest struct {
	// Query is the raw query text.
	Query string

	// Mode is the answer intent.
	Mode Mode

	// Source selects the curated or live path.
	Source Source
}

// AskResponse is the engine's reply to one AskRequest.
// Cards is never empty: when nothing matches, it holds exactly one
// deterministic no-match card.
type AskResponse struct {
	// Query is the original query text.
	Query string

	// Mode is the resolved answer intent.
	Mode Mode

	// Cards are the ranked answer cards, best first.
	Cards []AnswerCard
}
