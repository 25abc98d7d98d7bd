package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// mockAskService implements driving.AskService for command tests.
type mockAskService struct {
	lastReq domain.AskRequest
	resp    *domain.AskResponse
	err     error
}

func (m *mockAskService) Ask(_ context.Context, req domain.AskRequest) (*domain.AskResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

// mockFavoritesService implements driving.FavoritesService.
type mockFavoritesService struct {
	saved   []domain.AnswerCard
	removed []string
	cards   []domain.AnswerCard
	err     error
}

func (m *mockFavoritesService) Save(_ context.Context, card domain.AnswerCard) error {
	m.saved = append(m.saved, card)
	return m.err
}

func (m *mockFavoritesService) Remove(_ context.Context, source domain.Source, id string) error {
	m.removed = append(m.removed, string(source)+"/"+id)
	return m.err
}

func (m *mockFavoritesService) List(_ context.Context) ([]domain.AnswerCard, error) {
	return m.cards, m.err
}

func resetAskFlags() {
	askMode = "howto"
	askSource = "guide"
	askJSON = false
	askSave = false
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAskCommand_Definition(t *testing.T) {
	assert.Equal(t, "ask [query]", askCmd.Use)
	assert.NotEmpty(t, askCmd.Short)

	for _, name := range []string{"mode", "source", "json", "save"} {
		assert.NotNil(t, askCmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestAskCommand_Execute(t *testing.T) {
	origAsk := askService
	defer func() { askService = origAsk; resetAskFlags() }()

	mock := &mockAskService{
		resp: &domain.AskResponse{
			Query: "nanites",
			Mode:  domain.ModeHowTo,
			Cards: []domain.AnswerCard{
				{
					ID:      "nanites",
					Title:   "Nanites",
					Summary: "Refine Pugneum 5:1.",
					Details: "Where to find: everywhere\nHow to use: spend them\nTips:",
					Source:  domain.SourceGuide,
				},
			},
		},
	}
	askService = mock

	out, err := executeCommand(t, "ask", "nanites")
	require.NoError(t, err)

	assert.Equal(t, "nanites", mock.lastReq.Query)
	assert.Equal(t, domain.ModeHowTo, mock.lastReq.Mode)
	assert.Equal(t, domain.SourceGuide, mock.lastReq.Source)
	assert.Contains(t, out, "Nanites")
	assert.Contains(t, out, "Refine Pugneum 5:1.")
	assert.Contains(t, out, "Where to find: everywhere")
}

func TestAskCommand_ModeAndSourceFlags(t *testing.T) {
	origAsk := askService
	defer func() { askService = origAsk; resetAskFlags() }()

	mock := &mockAskService{resp: &domain.AskResponse{Query: "q", Mode: domain.ModeWhere}}
	askService = mock

	_, err := executeCommand(t, "ask", "radiant heart", "--mode", "where", "--source", "reddit")
	require.NoError(t, err)

	assert.Equal(t, domain.ModeWhere, mock.lastReq.Mode)
	assert.Equal(t, domain.SourceReddit, mock.lastReq.Source)
}

func TestAskCommand_JSONOutput(t *testing.T) {
	origAsk := askService
	defer func() { askService = origAsk; resetAskFlags() }()

	askService = &mockAskService{
		resp: &domain.AskResponse{
			Query: "nanites",
			Mode:  domain.ModeHowTo,
			Cards: []domain.AnswerCard{{ID: "nanites", Title: "Nanites"}},
		},
	}

	out, err := executeCommand(t, "ask", "nanites", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Query": "nanites"`)
	assert.Contains(t, out, `"Title": "Nanites"`)
}

func TestAskCommand_SaveFlag(t *testing.T) {
	origAsk := askService
	origFav := favoritesService
	defer func() {
		askService = origAsk
		favoritesService = origFav
		resetAskFlags()
	}()

	top := domain.AnswerCard{ID: "nanites", Title: "Nanites", Source: domain.SourceGuide}
	askService = &mockAskService{
		resp: &domain.AskResponse{Query: "nanites", Mode: domain.ModeHowTo, Cards: []domain.AnswerCard{top}},
	}
	fav := &mockFavoritesService{}
	favoritesService = fav

	out, err := executeCommand(t, "ask", "nanites", "--save")
	require.NoError(t, err)
	require.Len(t, fav.saved, 1)
	assert.Equal(t, "nanites", fav.saved[0].ID)
	assert.Contains(t, out, `Saved "Nanites" to favorites.`)
}

func TestAskCommand_NoService(t *testing.T) {
	origAsk := askService
	defer func() { askService = origAsk; resetAskFlags() }()
	askService = nil

	_, err := executeCommand(t, "ask", "nanites")
	assert.Error(t, err)
}
