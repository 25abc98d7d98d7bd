package domain

// KnowledgeEntry is a curated guide entry. Entries are loaded once at
// process start and never mutated by requests.
type KnowledgeEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Title is the canonical item or topic name.
	Title string

	// Aliases are alternative phrases players use for the same thing.
	Aliases []string

	// Where describes where the item is found.
	Where string

	// How describes how the item is obtained, crafted or used.
	How string

	// Tips are short efficiency pointers, in display order.
	Tips []string

	// References are link-free citation labels.
	References []string

	// CommunityNotes are curated observations sourced from the community.
	CommunityNotes []string

	// FAQ holds prepared question/answer pairs, in display order.
	FAQ []FAQItem

	// Storyboard is an optional textual step-by-step guide.
	Storyboard *Storyboard
}

// FAQItem is one prepared question and its answer.
type FAQItem struct {
	Question string
	Answer   string
}

// Storyboard is an ordered, purely textual step-by-step guide that
// stands in for external video. It is descriptive only and never scored.
type Storyboard struct {
	// Title names the walkthrough.
	Title string

	// Note is a one-line framing remark.
	Note string

	// Segments are the ordered steps.
	Segments []StoryboardSegment
}

// StoryboardSegment is one labelled step of a storyboard.
type StoryboardSegment struct {
	Label  string
	Detail string
}
