package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeframe_Create(t *testing.T) {
	c := NewCodeframe()

	require.NoError(t, c.Create("Fruit"))
	assert.True(t, c.Has("Fruit"))
	assert.Equal(t, 1, c.Len())
}

func TestCodeframe_Create_TrimsWhitespace(t *testing.T) {
	c := NewCodeframe()

	require.NoError(t, c.Create("  Fruit  "))
	assert.True(t, c.Has("Fruit"))
}

func TestCodeframe_Create_Duplicate(t *testing.T) {
	c := NewCodeframe()
	require.NoError(t, c.Create("Fruit"))

	err := c.Create("Fruit")
	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestCodeframe_Create_CaseSensitive(t *testing.T) {
	c := NewCodeframe()
	require.NoError(t, c.Create("Fruit"))

	// Different case is a different category.
	require.NoError(t, c.Create("fruit"))
	assert.Equal(t, 2, c.Len())
}

func TestCodeframe_Create_Reserved(t *testing.T) {
	c := NewCodeframe()

	err := c.Create(Uncategorized)
	assert.ErrorIs(t, err, ErrReservedCategory)
}

func TestCodeframe_Create_BlankName(t *testing.T) {
	c := NewCodeframe()

	assert.ErrorIs(t, c.Create(""), ErrInvalidCategoryName)
	assert.ErrorIs(t, c.Create("   "), ErrInvalidCategoryName)
}

func TestCodeframe_Rename(t *testing.T) {
	c := NewCodeframe()
	require.NoError(t, c.Create("Fruit"))
	require.NoError(t, c.Create("Veg"))

	require.NoError(t, c.Rename("Fruit", "Fruits"))
	assert.Equal(t, []string{"Fruits", "Veg"}, c.Names())
}

func TestCodeframe_Rename_Errors(t *testing.T) {
	c := NewCodeframe()
	require.NoError(t, c.Create("Fruit"))
	require.NoError(t, c.Create("Veg"))

	assert.ErrorIs(t, c.Rename("Missing", "X"), ErrUnknownCategory)
	assert.ErrorIs(t, c.Rename("Fruit", "Veg"), ErrDuplicateCategory)
	assert.ErrorIs(t, c.Rename("Fruit", Uncategorized), ErrReservedCategory)
	assert.ErrorIs(t, c.Rename(Uncategorized, "X"), ErrReservedCategory)
}

func TestCodeframe_Delete(t *testing.T) {
	c := NewCodeframe()
	require.NoError(t, c.Create("Fruit"))
	require.NoError(t, c.Create("Veg"))

	require.NoError(t, c.Delete("Fruit"))
	assert.Equal(t, []string{"Veg"}, c.Names())
}

func TestCodeframe_Delete_Errors(t *testing.T) {
	c := NewCodeframe()

	assert.ErrorIs(t, c.Delete("Missing"), ErrUnknownCategory)
	assert.ErrorIs(t, c.Delete(Uncategorized), ErrReservedCategory)
}
