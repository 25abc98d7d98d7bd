package services

import (
	"strings"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driving"
	"github.com/TonyLeary/nms-companion/internal/textproc"
)

// Ensure FollowUpService implements the interface.
var _ driving.FollowUpService = (*FollowUpService)(nil)

// Follow-up classification vocabularies. Rules are evaluated in order;
// the first match wins, so a question containing both a location word
// and a tip word resolves via the location rule.
var (
	locationWords = []string{"where", "location", "located", "planet", "system", "station", "coordinates", "find", "found"}
	howWords      = []string{"how", "craft", "build", "make", "use", "refine", "charge"}
	tipWords      = []string{"tip", "tips", "trick", "tricks", "best", "fastest", "efficient", "advice"}
	forumWords    = []string{"reddit"}
	videoWords    = []string{"video", "videos", "watch", "clip", "youtube"}
)

// Fixed responses for branches with nothing to show.
const (
	noHowAnswer   = "There's no crafting angle recorded for this one - try asking where to find it instead."
	noTipsAnswer  = "No tips recorded for this one yet."
	noNotesAnswer = "No community notes yet for this entry."
	clipAnswer    = "There's a step-by-step storyboard on this card - open it from the result view."
	noClipAnswer  = "No clip for this one yet - the storyboard walkthrough is the closest thing."
	firstAskMore  = "Ask me anything else about this entry."
	nextAskMore   = "Anything else you want to dig into on this one?"

	maxTipLines = 2
)

// followUpRule is one step of the keyword cascade: a predicate over the
// question's token set and the handler to run when it matches.
type followUpRule struct {
	matches func(tokens map[string]bool) bool
	respond func(card domain.AnswerCard) string
}

// FollowUpService answers ad-hoc questions about an already-selected
// card. Dispatch is a pure read of the card and a history snapshot.
type FollowUpService struct {
	rules []followUpRule
}

// NewFollowUpService creates the follow-up dispatcher.
func NewFollowUpService() *FollowUpService {
	return &FollowUpService{
		rules: []followUpRule{
			{matchAny(locationWords), respondWhere},
			{matchAny(howWords), respondHow},
			{matchAny(tipWords), respondTips},
			{matchAny(forumWords), respondNotes},
			{matchAny(videoWords), respondClip},
		},
	}
}

// Answer classifies the question and returns one response string.
// History is never mutated; the caller appends both the question and
// the returned answer after the call.
func (s *FollowUpService) Answer(card domain.AnswerCard, question string, history []domain.ConversationTurn) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", domain.ErrEmptyQuestion
	}

	tokens := textproc.TokenSet(textproc.Tokenize(question))
	for _, rule := range s.rules {
		if rule.matches(tokens) {
			return rule.respond(card), nil
		}
	}

	if answer, ok := bestFAQAnswer(card.FAQ, tokens); ok {
		return answer, nil
	}

	return fallbackAnswer(card, history), nil
}

func matchAny(words []string) func(map[string]bool) bool {
	return func(tokens map[string]bool) bool {
		for _, w := range words {
			if tokens[w] {
				return true
			}
		}
		return false
	}
}

func respondWhere(card domain.AnswerCard) string {
	if line := detailLine(card.Details, wherePrefix); line != "" {
		return line
	}
	return card.Summary
}

func respondHow(card domain.AnswerCard) string {
	if line := detailLine(card.Details, howPrefix); line != "" {
		return line
	}
	return noHowAnswer
}

func respondTips(card domain.AnswerCard) string {
	tips := detailTips(card.Details)
	if len(tips) == 0 {
		return noTipsAnswer
	}
	if len(tips) > maxTipLines {
		tips = tips[:maxTipLines]
	}
	return strings.Join(tips, "\n")
}

func respondNotes(card domain.AnswerCard) string {
	if len(card.CommunityNotes) == 0 {
		return noNotesAnswer
	}
	return strings.Join(card.CommunityNotes, "\n")
}

func respondClip(card domain.AnswerCard) string {
	if card.Storyboard != nil {
		return clipAnswer
	}
	return noClipAnswer
}

// bestFAQAnswer picks the FAQ entry with the highest token overlap
// between question and FAQ question. Ties keep the original FAQ order;
// zero overlap is treated as no match.
func bestFAQAnswer(faq []domain.FAQItem, tokens map[string]bool) (string, bool) {
	best := -1
	bestOverlap := 0
	for i, item := range faq {
		overlap := 0
		for _, tok := range textproc.Tokenize(item.Question) {
			if tokens[tok] {
				overlap++
			}
		}
		if overlap > bestOverlap {
			best = i
			bestOverlap = overlap
		}
	}
	if best < 0 {
		return "", false
	}
	return faq[best].Answer, true
}

// fallbackAnswer returns the card summary plus references, with a
// follow-up prompt whose wording depends on whether the player already
// asked something about this card.
func fallbackAnswer(card domain.AnswerCard, history []domain.ConversationTurn) string {
	parts := []string{card.Summary}
	if len(card.References) > 0 {
		parts = append(parts, "References: "+strings.Join(card.References, "; "))
	}
	if hasPriorQuestion(history) {
		parts = append(parts, nextAskMore)
	} else {
		parts = append(parts, firstAskMore)
	}
	return strings.Join(parts, "\n")
}

func hasPriorQuestion(history []domain.ConversationTurn) bool {
	for _, turn := range history {
		if turn.Role == domain.RoleAsker {
			return true
		}
	}
	return false
}
