package domain

import "github.com/codify-labs/codify-cli/internal/core/textutil"

// ResponseKey identifies a single response cell: one row of the imported
// dataset crossed with one response column.
type ResponseKey struct {
	// Row is the unique identifier from the first column of the import.
	Row string

	// Column is the name of the response column.
	Column string
}

// Response is one free-text answer, keyed by its source row and column.
// The text is immutable once imported; categorization state lives in the
// Ledger, not here.
type Response struct {
	// Key identifies the response.
	Key ResponseKey

	// Text is the original imported text.
	Text string

	// Norm is the normalised text used for matching and deduplication.
	// Empty means the cell is missing data.
	Norm string
}

// NewResponse builds a response, deriving its normalised form.
func NewResponse(key ResponseKey, text string) Response {
	return Response{Key: key, Text: text, Norm: textutil.Normalize(text)}
}

// Missing returns true if the response holds no usable text.
func (r Response) Missing() bool {
	return r.Norm == ""
}

// Dataset is the ordered collection of imported responses.
type Dataset struct {
	// IDColumn is the header of the identifier column.
	IDColumn string

	// Columns are the response column headers, in import order.
	Columns []string

	// Responses are all response cells in row-major import order.
	Responses []Response

	index map[ResponseKey]int
}

// NewDataset builds a dataset and its lookup index. Responses must be in
// row-major import order; their order determines match tie-breaking.
func NewDataset(idColumn string, columns []string, responses []Response) *Dataset {
	d := &Dataset{
		IDColumn:  idColumn,
		Columns:   columns,
		Responses: responses,
	}
	d.Reindex()
	return d
}

// Reindex rebuilds the key lookup index. Call after mutating Responses.
func (d *Dataset) Reindex() {
	d.index = make(map[ResponseKey]int, len(d.Responses))
	for i, r := range d.Responses {
		d.index[r.Key] = i
	}
}

// Lookup returns the response for a key, if present.
func (d *Dataset) Lookup(key ResponseKey) (Response, bool) {
	i, ok := d.index[key]
	if !ok {
		return Response{}, false
	}
	return d.Responses[i], true
}

// Order returns the import position of a key, or -1 if absent.
func (d *Dataset) Order(key ResponseKey) int {
	i, ok := d.index[key]
	if !ok {
		return -1
	}
	return i
}

// Empty returns true if no responses have been imported.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Responses) == 0
}

// RowIDs returns the distinct row identifiers in import order.
func (d *Dataset) RowIDs() []string {
	seen := make(map[string]bool, len(d.Responses))
	var ids []string
	for _, r := range d.Responses {
		if !seen[r.Key.Row] {
			seen[r.Key.Row] = true
			ids = append(ids, r.Key.Row)
		}
	}
	return ids
}

// Counts returns the occurrence count of every non-missing normalised
// text across the dataset.
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int)
	for _, r := range d.Responses {
		if !r.Missing() {
			counts[r.Norm]++
		}
	}
	return counts
}

// MissingCount returns the number of missing response cells.
func (d *Dataset) MissingCount() int {
	n := 0
	for _, r := range d.Responses {
		if r.Missing() {
			n++
		}
	}
	return n
}
