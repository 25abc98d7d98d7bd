package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_SetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("reddit.subreddit", "NoMansSkyTheGame"))

	// A fresh store over the same directory sees the value.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "NoMansSkyTheGame", reloaded.GetString("reddit.subreddit"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[reddit]\nsubreddit = \"NoMansSkyTheGame\"\nlimit = 25\n\n[search]\nverbose = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "NoMansSkyTheGame", store.GetString("reddit.subreddit"))
	assert.Equal(t, 25, store.GetInt("reddit.limit"))
	assert.True(t, store.GetBool("search.verbose"))
}

func TestConfigStore_TypedGettersOnMissingOrWrongType(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("reddit.limit", 25))

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
	assert.Equal(t, "", store.GetString("reddit.limit"))
	assert.False(t, store.GetBool("reddit.limit"))
}

func TestConfigStore_LoadRejectsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"top": "value",
		"reddit": map[string]any{
			"subreddit": "NoMansSkyTheGame",
			"search": map[string]any{
				"window": "month",
			},
		},
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, "value", flat["top"])
	assert.Equal(t, "NoMansSkyTheGame", flat["reddit.subreddit"])
	assert.Equal(t, "month", flat["reddit.search.window"])
}
