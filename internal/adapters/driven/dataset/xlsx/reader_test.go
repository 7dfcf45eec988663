package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReader_Supports(t *testing.T) {
	r := NewReader()

	assert.True(t, r.Supports("data.xlsx"))
	assert.True(t, r.Supports("data.XLSX"))
	assert.False(t, r.Supports("data.csv"))
}

func TestReader_Read(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"id", "answer"},
		{"1", "apple"},
		{"2", "Banana!"},
	})

	ds, err := NewReader().Read(path)
	require.NoError(t, err)

	assert.Equal(t, "id", ds.IDColumn)
	assert.Equal(t, []string{"answer"}, ds.Columns)
	require.Len(t, ds.Responses, 2)

	r, ok := ds.Lookup(domain.ResponseKey{Row: "2", Column: "answer"})
	require.True(t, ok)
	assert.Equal(t, "banana", r.Norm)
}

func TestReader_Read_ShortRowsAreMissing(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"id", "a", "b"},
		{"1", "apple"},
	})

	ds, err := NewReader().Read(path)
	require.NoError(t, err)

	r, ok := ds.Lookup(domain.ResponseKey{Row: "1", Column: "b"})
	require.True(t, ok)
	assert.True(t, r.Missing())
}

func TestReader_Read_Errors(t *testing.T) {
	t.Run("not a workbook", func(t *testing.T) {
		_, err := NewReader().Read(filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.ErrorIs(t, err, domain.ErrImportFormat)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeWorkbook(t, [][]any{{"id", "answer"}})
		_, err := NewReader().Read(path)
		assert.ErrorIs(t, err, domain.ErrImportFormat)
	})

	t.Run("empty identifier", func(t *testing.T) {
		path := writeWorkbook(t, [][]any{
			{"id", "answer"},
			{"", "apple"},
		})
		_, err := NewReader().Read(path)
		assert.ErrorIs(t, err, domain.ErrImportFormat)
	})
}
