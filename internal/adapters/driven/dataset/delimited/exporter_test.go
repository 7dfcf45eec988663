package delimited

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

func exportProject(t *testing.T) *domain.Project {
	t.Helper()

	responses := []domain.Response{
		domain.NewResponse(domain.ResponseKey{Row: "1", Column: "answer"}, "apple"),
		domain.NewResponse(domain.ResponseKey{Row: "2", Column: "answer"}, "banana"),
		domain.NewResponse(domain.ResponseKey{Row: "3", Column: "answer"}, ""),
	}
	p := domain.NewProject("export")
	p.Dataset = domain.NewDataset("id", []string{"answer"}, responses)
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))
	require.NoError(t, p.Categorize(
		[]domain.ResponseKey{{Row: "1", Column: "answer"}}, []string{"Fruit"}))
	return p
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExporter_Export_SingleMode(t *testing.T) {
	p := exportProject(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, NewExporter(false).Export(path, p))
	records := readCSV(t, path)

	require.Len(t, records, 4)
	assert.Equal(t, []string{"id", "answer:category"}, records[0])
	assert.Equal(t, []string{"1", "Fruit"}, records[1])
	assert.Equal(t, []string{"2", domain.Uncategorized}, records[2])
	// Missing cells export blank, not Uncategorized.
	assert.Equal(t, []string{"3", ""}, records[3])
}

func TestExporter_Export_MultiMode(t *testing.T) {
	p := exportProject(t)
	require.NoError(t, p.SetMode(domain.ModeMulti, false))
	require.NoError(t, p.Categorize(
		[]domain.ResponseKey{{Row: "2", Column: "answer"}}, []string{"Fruit", "Snack"}))
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, NewExporter(false).Export(path, p))
	records := readCSV(t, path)

	require.Len(t, records, 4)
	assert.Equal(t, []string{"id", "Fruit_answer", "Snack_answer"}, records[0])
	assert.Equal(t, []string{"1", "1", "0"}, records[1])
	assert.Equal(t, []string{"2", "1", "1"}, records[2])
	assert.Equal(t, []string{"3", "", ""}, records[3])
}

func TestExporter_Export_IncludeText(t *testing.T) {
	p := exportProject(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, NewExporter(true).Export(path, p))
	records := readCSV(t, path)

	assert.Equal(t, []string{"id", "answer", "answer:category"}, records[0])
	assert.Equal(t, []string{"1", "apple", "Fruit"}, records[1])
}
