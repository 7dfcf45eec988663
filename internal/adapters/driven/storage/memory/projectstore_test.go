package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

func sample(t *testing.T) *domain.Project {
	t.Helper()
	p := domain.NewProject("sample")
	p.Dataset = domain.NewDataset("id", []string{"answer"}, []domain.Response{
		domain.NewResponse(domain.ResponseKey{Row: "1", Column: "answer"}, "apple"),
	})
	require.NoError(t, p.CreateCategory("Fruit"))
	return p
}

func TestProjectStore_SaveIsolatesState(t *testing.T) {
	store := NewProjectStore()
	p := sample(t)

	require.NoError(t, store.Save("a", p))

	// Mutations after save must not leak into the stored copy.
	require.NoError(t, p.CreateCategory("Snack"))

	loaded, err := store.Load("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fruit"}, loaded.Codeframe.Names())
}

func TestProjectStore_LoadReturnsCopy(t *testing.T) {
	store := NewProjectStore()
	require.NoError(t, store.Save("a", sample(t)))

	first, err := store.Load("a")
	require.NoError(t, err)
	require.NoError(t, first.CreateCategory("Snack"))

	second, err := store.Load("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fruit"}, second.Codeframe.Names())
}

func TestProjectStore_Load_Missing(t *testing.T) {
	store := NewProjectStore()

	_, err := store.Load("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
