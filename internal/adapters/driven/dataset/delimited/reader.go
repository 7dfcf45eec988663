// Package delimited imports and exports delimited (CSV/TSV) response
// data. Import auto-detects the character encoding so files exported
// from legacy survey tools load without manual conversion.
package delimited

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.DatasetReader = (*Reader)(nil)

// Reader imports CSV and TSV files. The first row is the header; the
// first column holds unique identifiers and the remaining columns hold
// response text.
type Reader struct{}

// NewReader creates a new delimited-file reader.
func NewReader() *Reader {
	return &Reader{}
}

// Supports reports whether the file looks like a delimited file.
func (r *Reader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".tab":
		return true
	default:
		return false
	}
}

// Read parses the file into a dataset.
func (r *Reader) Read(path string) (*domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrImportFormat)
	}

	decoded, err := decode(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = delimiterFor(path)
	// Ragged rows are tolerated; short rows read as missing cells.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no data rows", domain.ErrImportFormat)
	}

	header := records[0]
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
	for _, row := range records[1:] {
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

	logger.Debug("Delimited import: %d rows, %d response columns",
		len(records)-1, len(columns))
	return domain.NewDataset(idColumn, columns, responses), nil
}

// decode converts raw bytes to UTF-8, detecting the source encoding.
func decode(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncodingDetection, err)
	}
	logger.Debug("Detected encoding %s (confidence %d)", result.Charset, result.Confidence)

	if strings.EqualFold(result.Charset, "UTF-8") || strings.EqualFold(result.Charset, "US-ASCII") {
		return raw, nil
	}

	enc, err := ianaindex.IANA.Encoding(result.Charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: unsupported charset %q", domain.ErrEncodingDetection, result.Charset)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding as %s: %v", domain.ErrEncodingDetection, result.Charset, err)
	}
	return decoded, nil
}

// delimiterFor picks the field delimiter from the file extension.
func delimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return ','
	}
}
