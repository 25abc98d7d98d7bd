package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

func TestFavoriteStore_SaveAndGet(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	card := domain.AnswerCard{ID: "nanites", Title: "Nanites", Source: domain.SourceGuide}
	require.NoError(t, store.Save(ctx, card))

	got, err := store.Get(ctx, domain.SourceGuide, "nanites")
	require.NoError(t, err)
	assert.Equal(t, "Nanites", got.Title)
}

func TestFavoriteStore_GetMissing(t *testing.T) {
	store := NewFavoriteStore()

	_, err := store.Get(context.Background(), domain.SourceGuide, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavoriteStore_KeyIncludesSource(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	guide := domain.AnswerCard{ID: "same-id", Title: "From the guide", Source: domain.SourceGuide}
	live := domain.AnswerCard{ID: "same-id", Title: "From the feed", Source: domain.SourceReddit}
	require.NoError(t, store.Save(ctx, guide))
	require.NoError(t, store.Save(ctx, live))

	got, err := store.Get(ctx, domain.SourceReddit, "same-id")
	require.NoError(t, err)
	assert.Equal(t, "From the feed", got.Title)

	got, err = store.Get(ctx, domain.SourceGuide, "same-id")
	require.NoError(t, err)
	assert.Equal(t, "From the guide", got.Title)
}

func TestFavoriteStore_SaveOverwrites(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "x", Title: "old", Source: domain.SourceGuide}))
	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "x", Title: "new", Source: domain.SourceGuide}))

	got, err := store.Get(ctx, domain.SourceGuide, "x")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFavoriteStore_Delete(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "x", Source: domain.SourceGuide}))
	require.NoError(t, store.Delete(ctx, domain.SourceGuide, "x"))

	_, err := store.Get(ctx, domain.SourceGuide, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, domain.SourceGuide, "x"), domain.ErrNotFound)
}

func TestFavoriteStore_OverwriteRefreshesRecency(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "a", Source: domain.SourceGuide}))
	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "b", Source: domain.SourceGuide}))
	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "a", Title: "updated", Source: domain.SourceGuide}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "updated", list[0].Title)
	assert.Equal(t, "b", list[1].ID)
}

func TestFavoriteStore_ListMostRecentFirst(t *testing.T) {
	store := NewFavoriteStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "a", Source: domain.SourceGuide}))
	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "b", Source: domain.SourceGuide}))
	require.NoError(t, store.Save(ctx, domain.AnswerCard{ID: "c", Source: domain.SourceGuide}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "a", list[2].ID)
}
