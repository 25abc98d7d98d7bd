package domain

// AnswerCard is the only entity crossing the engine boundary. It is
// built fresh per request and never cached. No string field ever
// contains an outbound URL.
type AnswerCard struct {
	// ID identifies the card. Curated cards reuse the entry ID, live
	// cards reuse the post ID, and no-match cards derive a stable ID
	// from the normalized query.
	ID string

	// Title is the display title.
	Title string

	// Summary is the mode-specific one-line answer.
	Summary string

	// Details is the multi-line answer block
	// ("Where to find: ..." / "How to use: ..." / "Tips:").
	Details string

	// Source labels the producing path (guide or reddit).
	Source Source

	// References are link-free citation strings, in display order.
	References []string

	// CommunityNotes are community observations, in display order.
	CommunityNotes []string

	// FAQ holds prepared question/answer pairs for the dispatcher.
	FAQ []FAQItem

	// Storyboard is an optional textual walkthrough.
	Storyboard *Storyboard
}

// Role identifies who produced a conversation turn.
type Role string

const (
	// RoleAsker is the player asking follow-up questions.
	RoleAsker Role = "asker"
	// RoleResponder is the engine answering them.
	RoleResponder Role = "responder"
)

// ConversationTurn is one entry in a card's follow-up conversation.
// The sequence is append-only and owned by the caller; the dispatcher
// only reads a snapshot of it.
type ConversationTurn struct {
	Role Role
	Text string
}
