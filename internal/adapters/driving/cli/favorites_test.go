package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

func TestFavoritesCommand_Definition(t *testing.T) {
	assert.Equal(t, "favorites", favoritesCmd.Use)
	assert.Equal(t, "list", favoritesListCmd.Use)
	assert.Equal(t, "remove [source] [id]", favoritesRemoveCmd.Use)
}

func TestFavoritesList(t *testing.T) {
	origFav := favoritesService
	defer func() { favoritesService = origFav }()

	favoritesService = &mockFavoritesService{
		cards: []domain.AnswerCard{
			{ID: "radiant-heart", Title: "Radiant Heart", Summary: "Corrupted sentinel drop.", Source: domain.SourceGuide},
		},
	}

	out, err := executeCommand(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Radiant Heart")
	assert.Contains(t, out, "guide/radiant-heart")
	assert.Contains(t, out, "Corrupted sentinel drop.")
}

func TestFavoritesList_Empty(t *testing.T) {
	origFav := favoritesService
	defer func() { favoritesService = origFav }()

	favoritesService = &mockFavoritesService{}

	out, err := executeCommand(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorites saved yet")
}

func TestFavoritesRemove(t *testing.T) {
	origFav := favoritesService
	defer func() { favoritesService = origFav }()

	fav := &mockFavoritesService{}
	favoritesService = fav

	out, err := executeCommand(t, "favorites", "remove", "guide", "radiant-heart")
	require.NoError(t, err)
	assert.Equal(t, []string{"guide/radiant-heart"}, fav.removed)
	assert.Contains(t, out, "Removed guide/radiant-heart.")
}

func TestFavoritesRemove_NotFound(t *testing.T) {
	origFav := favoritesService
	defer func() { favoritesService = origFav }()

	favoritesService = &mockFavoritesService{err: domain.ErrNotFound}

	_, err := executeCommand(t, "favorites", "remove", "guide", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no favorite guide/nope")
}

func TestFavoritesCommands_NoService(t *testing.T) {
	origFav := favoritesService
	defer func() { favoritesService = origFav }()
	favoritesService = nil

	_, err := executeCommand(t, "favorites", "list")
	assert.Error(t, err)

	_, err = executeCommand(t, "favorites", "remove", "guide", "x")
	assert.Error(t, err)
}
