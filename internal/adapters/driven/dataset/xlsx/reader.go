// Package xlsx imports response data from Excel workbooks. Only the
// first sheet is read; the layout matches the delimited importer (header
// row, identifier column first).
package xlsx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.DatasetReader = (*Reader)(nil)

// Reader imports .xlsx workbooks.
type Reader struct{}

// NewReader creates a new xlsx reader.
func NewReader() *Reader {
	return &Reader{}
}

// Supports reports whether the file is an Excel workbook.
func (r *Reader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// Read parses the first sheet into a dataset.
func (r *Reader) Read(path string) (*domain.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrImportFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows", domain.ErrImportFormat)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf(
			"%w: need an identifier column and at least one response column",
			domain.ErrImportFormat)
	}

	idColumn := strings.TrimSpace(header[0])
	columns := make([]string, 0, len(header)-1)
	for i, h := range header[1:] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column%d", i+2)
		}
		columns = append(columns, h)
	}

	var responses []domain.Response
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if id == "" {
			return nil, fmt.Errorf("%w: row with empty identifier", domain.ErrImportFormat)
		}
		for i, col := range columns {
			text := ""
			if i+1 < len(row) {
				text = row[i+1]
			}
			responses = append(responses,
				domain.NewResponse(domain.ResponseKey{Row: id, Column: col}, text))
		}
	}

	logger.Debug("XLSX import: sheet %q, %d rows, %d response columns",
		sheets[0], len(rows)-1, len(columns))
	return domain.NewDataset(idColumn, columns, responses), nil
}
