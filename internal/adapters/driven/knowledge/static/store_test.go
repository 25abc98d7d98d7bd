package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

func TestStore_All(t *testing.T) {
	store := New()

	got, err := store.All(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)

	seen := make(map[string]bool)
	for _, entry := range got {
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Title)
		assert.NotEmpty(t, entry.Where)
		assert.NotEmpty(t, entry.How)
		assert.False(t, seen[entry.ID], "duplicate entry ID %q", entry.ID)
		seen[entry.ID] = true
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := New()

	first, err := store.All(context.Background())
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := store.All(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestStore_Get(t *testing.T) {
	store := New()

	entry, err := store.Get(context.Background(), "nanites")
	require.NoError(t, err)
	assert.Equal(t, "Nanites", entry.Title)

	_, err = store.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntries_LinkFree(t *testing.T) {
	store := New()

	got, err := store.All(context.Background())
	require.NoError(t, err)

	for _, entry := range got {
		fields := []string{entry.Where, entry.How}
		fields = append(fields, entry.Tips...)
		fields = append(fields, entry.References...)
		fields = append(fields, entry.CommunityNotes...)
		for _, f := range fields {
			assert.NotContains(t, f, "http", "entry %q", entry.ID)
			assert.NotContains(t, f, "www.", "entry %q", entry.ID)
		}
	}
}
