package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionStore_TouchAndRecent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Touch("/tmp/a.codify.json", "a"))
	require.NoError(t, store.Touch("/tmp/b.codify.json", "b"))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Most recent first.
	assert.Equal(t, "/tmp/b.codify.json", entries[0].Path)
	assert.Equal(t, "b", entries[0].Name)
	assert.NotEmpty(t, entries[0].ID)
}

func TestSessionStore_Touch_RefreshesExisting(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Touch("/tmp/a.codify.json", "a"))
	require.NoError(t, store.Touch("/tmp/a.codify.json", "renamed"))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "renamed", entries[0].Name)
}

func TestSessionStore_Recent_Limit(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Touch("/tmp/a", "a"))
	require.NoError(t, store.Touch("/tmp/b", "b"))
	require.NoError(t, store.Touch("/tmp/c", "c"))

	entries, err := store.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSessionStore_Forget(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Touch("/tmp/a", "a"))
	require.NoError(t, store.Forget("/tmp/a"))
	require.NoError(t, store.Forget("/tmp/never-seen"))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
