package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codify-labs/codify-cli/internal/adapters/driven/storage/file"
	"github.com/codify-labs/codify-cli/internal/core/domain"
)

func TestCategoryAddCmd_AddsAndPersists(t *testing.T) {
	path, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "category", "add", "Snack", "Drink", "-p", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 categories")

	loaded, err := file.NewProjectStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fruit", "Snack", "Drink"}, loaded.Codeframe.Names())
}

func TestCategoryAddCmd_Duplicate(t *testing.T) {
	path, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "category", "add", "Fruit", "-p", path)

	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}

func TestCategoryListCmd_ShowsMetrics(t *testing.T) {
	path, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "category", "list", "-p", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Fruit")
	assert.Contains(t, out, domain.Uncategorized)
}

func TestCategoryDeleteCmd_ReservedName(t *testing.T) {
	path, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "category", "delete", domain.Uncategorized, "-p", path)

	assert.ErrorIs(t, err, domain.ErrReservedCategory)
}

func TestModeCmd_LossySwitchNeedsForce(t *testing.T) {
	path, cleanup := setupTestServices(t)
	defer cleanup()

	// Build a multi-mode project with a double assignment.
	_, err := execute(t, "mode", "multi", "-p", path)
	require.NoError(t, err)
	_, err = execute(t, "category", "add", "Snack", "-p", path)
	require.NoError(t, err)
	_, err = execute(t, "assign", "apple", "-p", path, "-t", "80", "-c", "Fruit", "-c", "Snack")
	require.NoError(t, err)

	_, err = execute(t, "mode", "single", "-p", path)
	assert.ErrorIs(t, err, domain.ErrModeConflict)

	out, err := execute(t, "mode", "single", "--force", "-p", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Mode set to single")

	loaded, err := file.NewProjectStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSingle, loaded.Mode)
	assert.LessOrEqual(t, loaded.Ledger.MaxAssignments(), 1)
}
