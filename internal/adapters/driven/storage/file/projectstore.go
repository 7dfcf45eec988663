// Package file persists projects as JSON documents on disk. A project
// file is rejected wholesale on any structural or semantic problem so a
// half-corrupt file can never replace an open project.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure ProjectStore implements the interface.
var _ driven.ProjectStore = (*ProjectStore)(nil)

// formatVersion is bumped when the document layout changes.
const formatVersion = 1

// ProjectStore reads and writes project JSON files.
type ProjectStore struct{}

// NewProjectStore creates a new file-based project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

// projectDoc is the on-disk shape of a project.
type projectDoc struct {
	Version   int         `json:"version"`
	Name      string      `json:"name"`
	Mode      string      `json:"mode"`
	Dataset   datasetDoc  `json:"dataset"`
	Codeframe []string    `json:"codeframe"`
	Ledger    []ledgerDoc `json:"ledger"`
}

type datasetDoc struct {
	IDColumn string   `json:"id_column"`
	Columns  []string `json:"columns"`
	Rows     []rowDoc `json:"rows"`
}

type rowDoc struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

type ledgerDoc struct {
	Row        string   `json:"row"`
	Column     string   `json:"column"`
	Categories []string `json:"categories"`
}

// Save serializes the project to path.
func (s *ProjectStore) Save(path string, project *domain.Project) error {
	doc := encode(project)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	logger.Debug("Wrote project file %q (%d bytes)", path, len(data))
	return nil
}

// Load reads and validates a project file. Every failure comes back
// wrapped in domain.ErrProjectValidation except plain I/O errors.
func (s *ProjectStore) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var doc projectDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: not a project file: %v", domain.ErrProjectValidation, err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", domain.ErrProjectValidation, doc.Version)
	}

	project, err := decode(&doc)
	if err != nil {
		return nil, err
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return project, nil
}

// encode flattens the project into the document shape. Rows and ledger
// entries are written in a stable order so saves diff cleanly.
func encode(project *domain.Project) *projectDoc {
	ds := project.Dataset
	doc := &projectDoc{
		Version: formatVersion,
		Name:    project.Name,
		Mode:    project.Mode.String(),
		Dataset: datasetDoc{
			IDColumn: ds.IDColumn,
			Columns:  ds.Columns,
		},
		Codeframe: project.Codeframe.Names(),
	}

	for _, id := range ds.RowIDs() {
		row := rowDoc{ID: id}
		for _, col := range ds.Columns {
			r, _ := ds.Lookup(domain.ResponseKey{Row: id, Column: col})
			row.Cells = append(row.Cells, r.Text)
		}
		doc.Dataset.Rows = append(doc.Dataset.Rows, row)
	}

	keys := project.Ledger.Keys()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Column < keys[j].Column
	})
	for _, key := range keys {
		doc.Ledger = append(doc.Ledger, ledgerDoc{
			Row:        key.Row,
			Column:     key.Column,
			Categories: project.Ledger.Categories(key),
		})
	}
	return doc
}

// decode rebuilds a project from the document shape, checking structure
// as it goes. Semantic checks are left to Project.Validate.
func decode(doc *projectDoc) (*domain.Project, error) {
	mode := domain.CategorizationMode(doc.Mode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrProjectValidation, doc.Mode)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: project has no name", domain.ErrProjectValidation)
	}
	if len(doc.Dataset.Columns) == 0 {
		return nil, fmt.Errorf("%w: dataset has no response columns", domain.ErrProjectValidation)
	}

	var responses []domain.Response
	seen := make(map[string]bool)
	for _, row := range doc.Dataset.Rows {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: row with empty identifier", domain.ErrProjectValidation)
		}
		if seen[row.ID] {
			return nil, fmt.Errorf("%w: duplicate identifier %q", domain.ErrProjectValidation, row.ID)
		}
		seen[row.ID] = true
		if len(row.Cells) != len(doc.Dataset.Columns) {
			return nil, fmt.Errorf("%w: row %q has %d cells, want %d",
				domain.ErrProjectValidation, row.ID, len(row.Cells), len(doc.Dataset.Columns))
		}
		for i, col := range doc.Dataset.Columns {
			responses = append(responses, domain.NewResponse(
				domain.ResponseKey{Row: row.ID, Column: col}, row.Cells[i]))
		}
	}

	project := domain.NewProject(doc.Name)
	project.Mode = mode
	project.Dataset = domain.NewDataset(doc.Dataset.IDColumn, doc.Dataset.Columns, responses)

	for _, name := range doc.Codeframe {
		if err := project.Codeframe.Create(name); err != nil {
			return nil, fmt.Errorf("%w: codeframe entry %q: %v", domain.ErrProjectValidation, name, err)
		}
	}
	for _, entry := range doc.Ledger {
		key := domain.ResponseKey{Row: entry.Row, Column: entry.Column}
		for _, c := range entry.Categories {
			project.Ledger.Add(key, c)
		}
	}
	return project, nil
}
