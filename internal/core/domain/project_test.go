package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testProject builds a project with one response column and a few rows.
func testProject(t *testing.T, texts ...string) *Project {
	t.Helper()

	var responses []Response
	for i, text := range texts {
		responses = append(responses, NewResponse(
			ResponseKey{Row: rowID(i), Column: "answer"}, text))
	}
	p := NewProject("test")
	p.Dataset = NewDataset("id", []string{"answer"}, responses)
	return p
}

func rowID(i int) string {
	return string(rune('1' + i))
}

func TestProject_Categorize_SingleModeOverwrites(t *testing.T) {
	p := testProject(t, "apple", "banana")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))

	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit"}))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Snack"}))

	assert.Equal(t, []string{"Snack"}, p.Ledger.Categories(key("1")))
}

func TestProject_Categorize_SingleModeRejectsMultiple(t *testing.T) {
	p := testProject(t, "apple")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))

	err := p.Categorize([]ResponseKey{key("1")}, []string{"Fruit", "Snack"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProject_Categorize_MultiModeAccumulates(t *testing.T) {
	p := testProject(t, "apple")
	p.Mode = ModeMulti
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))

	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit"}))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Snack"}))

	assert.Equal(t, []string{"Fruit", "Snack"}, p.Ledger.Categories(key("1")))
}

func TestProject_Categorize_UnknownCategory(t *testing.T) {
	p := testProject(t, "apple")

	err := p.Categorize([]ResponseKey{key("1")}, []string{"Missing"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
	// Rejected wholesale: nothing was assigned.
	assert.Equal(t, 0, p.Ledger.Len())
}

func TestProject_Categorize_UnknownKey(t *testing.T) {
	p := testProject(t, "apple")
	require.NoError(t, p.CreateCategory("Fruit"))

	err := p.Categorize([]ResponseKey{key("9")}, []string{"Fruit"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, p.Ledger.Len())
}

func TestProject_Recategorize_MultiModeMoves(t *testing.T) {
	p := testProject(t, "apple")
	p.Mode = ModeMulti
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit"}))

	require.NoError(t, p.Recategorize([]ResponseKey{key("1")}, "Fruit", []string{"Snack"}))

	assert.Equal(t, []string{"Snack"}, p.Ledger.Categories(key("1")))
}

func TestProject_DeleteCategory_ReturnsToUncategorized(t *testing.T) {
	p := testProject(t, "apple", "banana")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.Categorize([]ResponseKey{key("1"), key("2")}, []string{"Fruit"}))
	require.Empty(t, p.Uncategorized())

	require.NoError(t, p.DeleteCategory("Fruit"))

	assert.Len(t, p.Uncategorized(), 2)
	assert.False(t, p.Codeframe.Has("Fruit"))
}

func TestProject_RenameCategory_RewritesLedger(t *testing.T) {
	p := testProject(t, "apple")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit"}))

	require.NoError(t, p.RenameCategory("Fruit", "Fruits"))

	assert.Equal(t, []string{"Fruits"}, p.Ledger.Categories(key("1")))
	require.NoError(t, p.Validate())
}

func TestProject_Uncategorized_ExcludesMissing(t *testing.T) {
	p := testProject(t, "apple", "", "   ")

	pool := p.Uncategorized()
	require.Len(t, pool, 1)
	assert.Equal(t, "apple", pool[0].Text)
}

func TestProject_InCategory_Uncategorized(t *testing.T) {
	p := testProject(t, "apple", "banana")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit"}))

	got, err := p.InCategory(Uncategorized)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "banana", got[0].Text)
}

func TestProject_SetMode_LossyRefusedWithoutForce(t *testing.T) {
	p := testProject(t, "apple")
	p.Mode = ModeMulti
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit", "Snack"}))

	err := p.SetMode(ModeSingle, false)
	assert.ErrorIs(t, err, ErrModeConflict)
	assert.Equal(t, ModeMulti, p.Mode)
}

func TestProject_SetMode_ForcedKeepsFirstCategory(t *testing.T) {
	p := testProject(t, "apple")
	p.Mode = ModeMulti
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))
	require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit", "Snack"}))

	require.NoError(t, p.SetMode(ModeSingle, true))

	assert.Equal(t, ModeSingle, p.Mode)
	assert.Equal(t, []string{"Fruit"}, p.Ledger.Categories(key("1")))
	require.NoError(t, p.Validate())
}

func TestProject_SetMode_SingleToMultiAlwaysAllowed(t *testing.T) {
	p := testProject(t, "apple")

	require.NoError(t, p.SetMode(ModeMulti, false))
	assert.Equal(t, ModeMulti, p.Mode)
}

func TestProject_Validate(t *testing.T) {
	t.Run("ledger references unknown response", func(t *testing.T) {
		p := testProject(t, "apple")
		require.NoError(t, p.CreateCategory("Fruit"))
		p.Ledger.Add(key("9"), "Fruit")

		assert.ErrorIs(t, p.Validate(), ErrProjectValidation)
	})

	t.Run("ledger references unknown category", func(t *testing.T) {
		p := testProject(t, "apple")
		p.Ledger.Add(key("1"), "Ghost")

		assert.ErrorIs(t, p.Validate(), ErrProjectValidation)
	})

	t.Run("single mode with multiple categories", func(t *testing.T) {
		p := testProject(t, "apple")
		require.NoError(t, p.CreateCategory("Fruit"))
		require.NoError(t, p.CreateCategory("Snack"))
		p.Ledger.Add(key("1"), "Fruit")
		p.Ledger.Add(key("1"), "Snack")

		assert.ErrorIs(t, p.Validate(), ErrProjectValidation)
	})

	t.Run("valid project", func(t *testing.T) {
		p := testProject(t, "apple")
		require.NoError(t, p.CreateCategory("Fruit"))
		require.NoError(t, p.Categorize([]ResponseKey{key("1")}, []string{"Fruit"}))

		assert.NoError(t, p.Validate())
	})
}
