package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

func followUpCard() domain.AnswerCard {
	entry := domain.KnowledgeEntry{
		ID:    "radiant-heart",
		Title: "Radiant Heart",
		Where: "Dropped by corrupted sentinels on dissonant planets.",
		How:   "Combine with an Inverted Mirror to craft an Echo Locator.",
		Tips: []string{
			"Check the planet description for 'dissonant'.",
			"Bring a good weapon, the quads hit hard.",
			"Harvest the hearts quickly before reinforcements land.",
		},
		References:     []string{"Guide entry maintained by hand"},
		CommunityNotes: []string{"Dissonance spikes also drop them now."},
		FAQ: []domain.FAQItem{
			{Question: "Can you sell radiant hearts for units?", Answer: "Yes, but crafting the Echo Locator is worth more."},
			{Question: "Do they respawn after a reload?", Answer: "Yes, reloading at a dissonant planet resets sentinel spawns."},
		},
		Storyboard: &domain.Storyboard{Title: "Heart run"},
	}
	return CardFromEntry(entry, domain.ModeHowTo)
}

func TestFollowUp_EmptyQuestion(t *testing.T) {
	svc := NewFollowUpService()

	_, err := svc.Answer(followUpCard(), "  ", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
}

func TestFollowUp_LocationQuestion(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "where do I find them", nil)
	require.NoError(t, err)
	assert.Equal(t, "Where to find: Dropped by corrupted sentinels on dissonant planets.", answer)
}

func TestFollowUp_LocationOutranksTips(t *testing.T) {
	// A question containing both vocabularies resolves via the earlier
	// rule in the cascade.
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "where is the best tip to find this", nil)
	require.NoError(t, err)
	assert.Equal(t, "Where to find: Dropped by corrupted sentinels on dissonant planets.", answer)
}

func TestFollowUp_HowQuestion(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "how do I craft with it", nil)
	require.NoError(t, err)
	assert.Equal(t, "How to use: Combine with an Inverted Mirror to craft an Echo Locator.", answer)
}

func TestFollowUp_HowWithoutDetails(t *testing.T) {
	svc := NewFollowUpService()
	card := domain.AnswerCard{Summary: "bare card"}

	answer, err := svc.Answer(card, "how do I use it", nil)
	require.NoError(t, err)
	assert.Equal(t, noHowAnswer, answer)
}

func TestFollowUp_TipsCappedAtTwo(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "any tips", nil)
	require.NoError(t, err)
	assert.Equal(t,
		"- Check the planet description for 'dissonant'.\n"+
			"- Bring a good weapon, the quads hit hard.",
		answer)
}

func TestFollowUp_TipsMissing(t *testing.T) {
	svc := NewFollowUpService()
	card := domain.AnswerCard{Summary: "bare card"}

	answer, err := svc.Answer(card, "any tips", nil)
	require.NoError(t, err)
	assert.Equal(t, noTipsAnswer, answer)
}

func TestFollowUp_RedditQuestion(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "what does reddit say", nil)
	require.NoError(t, err)
	assert.Equal(t, "Dissonance spikes also drop them now.", answer)

	bare := domain.AnswerCard{Summary: "bare card"}
	answer, err = svc.Answer(bare, "what does reddit say", nil)
	require.NoError(t, err)
	assert.Equal(t, noNotesAnswer, answer)
}

func TestFollowUp_VideoQuestion(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "got a video of the run", nil)
	require.NoError(t, err)
	assert.Equal(t, clipAnswer, answer)

	bare := domain.AnswerCard{Summary: "bare card"}
	answer, err = svc.Answer(bare, "got a video of the run", nil)
	require.NoError(t, err)
	assert.Equal(t, noClipAnswer, answer)
}

func TestFollowUp_FAQMatch(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "can I sell for units", nil)
	require.NoError(t, err)
	assert.Equal(t, "Yes, but crafting the Echo Locator is worth more.", answer)
}

func TestFollowUp_FAQZeroOverlapFallsThrough(t *testing.T) {
	svc := NewFollowUpService()

	answer, err := svc.Answer(followUpCard(), "anything noteworthy", nil)
	require.NoError(t, err)
	assert.Contains(t, answer, "Combine with an Inverted Mirror")
	assert.Contains(t, answer, "References: Guide entry maintained by hand")
	assert.Contains(t, answer, firstAskMore)
}

func TestFollowUp_FallbackPromptChangesAfterFirstAsk(t *testing.T) {
	svc := NewFollowUpService()
	history := []domain.ConversationTurn{
		{Role: domain.RoleAsker, Text: "where do I find them"},
		{Role: domain.RoleResponder, Text: "Where to find: ..."},
	}

	answer, err := svc.Answer(followUpCard(), "anything noteworthy", history)
	require.NoError(t, err)
	assert.Contains(t, answer, nextAskMore)
	assert.NotContains(t, answer, firstAskMore)
}
