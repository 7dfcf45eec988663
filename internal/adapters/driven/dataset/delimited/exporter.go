package delimited

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.DatasetExporter = (*Exporter)(nil)

// Exporter writes the categorized dataset to a CSV file.
//
// Single mode writes one category-name column per response column.
// Multi mode writes one binary column per (category, response column)
// pair, Uncategorized omitted, so the file drops straight into
// cross-tab tooling. Missing cells stay blank in either shape.
type Exporter struct {
	// IncludeText also writes the original response text columns.
	IncludeText bool
}

// NewExporter creates a new CSV exporter.
func NewExporter(includeText bool) *Exporter {
	return &Exporter{IncludeText: includeText}
}

// Export writes the project's categorized data to path.
func (e *Exporter) Export(path string, project *domain.Project) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(e.records(project)); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	logger.Info("Exported %d rows to %q", len(project.Dataset.RowIDs()), path)
	return nil
}

// records builds the header and data rows.
func (e *Exporter) records(project *domain.Project) [][]string {
	ds := project.Dataset
	categories := project.Codeframe.Names()

	header := []string{ds.IDColumn}
	if e.IncludeText {
		header = append(header, ds.Columns...)
	}
	for _, col := range ds.Columns {
		if project.Mode == domain.ModeSingle {
			header = append(header, col+":category")
			continue
		}
		for _, cat := range categories {
			header = append(header, cat+"_"+col)
		}
	}

	records := [][]string{header}
	for _, id := range ds.RowIDs() {
		row := []string{id}
		if e.IncludeText {
			for _, col := range ds.Columns {
				r, _ := ds.Lookup(domain.ResponseKey{Row: id, Column: col})
				row = append(row, r.Text)
			}
		}
		for _, col := range ds.Columns {
			key := domain.ResponseKey{Row: id, Column: col}
			r, ok := ds.Lookup(key)
			missing := !ok || r.Missing()
			if project.Mode == domain.ModeSingle {
				row = append(row, singleCell(project, key, missing))
				continue
			}
			for _, cat := range categories {
				row = append(row, multiCell(project, key, cat, missing))
			}
		}
		records = append(records, row)
	}
	return records
}

// singleCell renders the category name for one response in single mode.
func singleCell(project *domain.Project, key domain.ResponseKey, missing bool) string {
	if missing {
		return ""
	}
	cats := project.Ledger.Categories(key)
	if len(cats) == 0 {
		return domain.Uncategorized
	}
	return cats[0]
}

// multiCell renders the 1/0 membership flag for one response and
// category in multi mode.
func multiCell(project *domain.Project, key domain.ResponseKey, category string, missing bool) string {
	if missing {
		return ""
	}
	for _, c := range project.Ledger.Categories(key) {
		if c == category {
			return "1"
		}
	}
	return "0"
}
