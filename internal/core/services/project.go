package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages project lifecycle: import, append, save, load
// and export.
type ProjectService struct {
	readers  []driven.DatasetReader
	store    driven.ProjectStore
	exporter driven.DatasetExporter
	session  driven.SessionStore
}

// NewProjectService creates a new project service. The session store is
// optional (can be nil).
func NewProjectService(
	readers []driven.DatasetReader,
	store driven.ProjectStore,
	exporter driven.DatasetExporter,
	session driven.SessionStore,
) *ProjectService {
	return &ProjectService{
		readers:  readers,
		store:    store,
		exporter: exporter,
		session:  session,
	}
}

// Import creates a new project from a tabular data file.
func (s *ProjectService) Import(path string) (*domain.Project, error) {
	logger.Section("Import")
	logger.Info("Importing dataset from %q", path)

	dataset, err := s.readDataset(path)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	project := domain.NewProject(name)
	project.Dataset = dataset

	logger.Dump("Imported project", map[string]any{
		"name":      project.Name,
		"columns":   dataset.Columns,
		"rows":      len(dataset.RowIDs()),
		"responses": len(dataset.Responses),
		"missing":   dataset.MissingCount(),
	})
	return project, nil
}

// Append imports another file with the same column shape into the
// project. Responses whose normalised text is already categorized
// inherit the existing assignments.
func (s *ProjectService) Append(project *domain.Project, path string) error {
	logger.Section("Append")
	if project.Dataset.Empty() {
		return domain.ErrNoDataset
	}

	appended, err := s.readDataset(path)
	if err != nil {
		return err
	}
	if len(appended.Columns) != len(project.Dataset.Columns) {
		return fmt.Errorf("%w: got %d response columns, want %d",
			domain.ErrColumnMismatch, len(appended.Columns), len(project.Dataset.Columns))
	}
	existing := make(map[string]bool)
	for _, id := range project.Dataset.RowIDs() {
		existing[id] = true
	}
	for _, id := range appended.RowIDs() {
		if existing[id] {
			return fmt.Errorf("%w: duplicate identifier %q", domain.ErrImportFormat, id)
		}
	}

	// Snapshot the codeframe application before the dataset grows: which
	// normalised texts are already coded, and into what.
	normCats := make(map[string][]string)
	for _, key := range project.Ledger.Keys() {
		r, ok := project.Dataset.Lookup(key)
		if !ok {
			continue
		}
		for _, c := range project.Ledger.Categories(key) {
			normCats[r.Norm] = appendUnique(normCats[r.Norm], c)
		}
	}

	inherited := 0
	for _, r := range appended.Responses {
		// Appended cells keep their own row ids but land in the existing
		// columns, positionally.
		r.Key.Column = project.Dataset.Columns[indexOf(appended.Columns, r.Key.Column)]
		project.Dataset.Responses = append(project.Dataset.Responses, r)
		if cats, ok := normCats[r.Norm]; ok && !r.Missing() {
			for _, c := range cats {
				if project.Mode == domain.ModeSingle {
					project.Ledger.Set(r.Key, c)
					break
				}
				project.Ledger.Add(r.Key, c)
			}
			inherited++
		}
	}
	project.Dataset.Reindex()

	logger.Info("Appended %d responses, %d inherited existing assignments",
		len(appended.Responses), inherited)
	return nil
}

// Save persists the project to a project file.
func (s *ProjectService) Save(project *domain.Project, path string) error {
	logger.Section("Save")
	logger.Info("Saving project %q to %q", project.Name, path)
	if err := s.store.Save(path, project); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	s.touch(path, project.Name)
	return nil
}

// Load reads a project file. On any failure nothing is replaced; the
// caller keeps its current project.
func (s *ProjectService) Load(path string) (*domain.Project, error) {
	logger.Section("Load")
	logger.Info("Loading project from %q", path)
	project, err := s.store.Load(path)
	if err != nil {
		logger.Warn("Load rejected: %v", err)
		return nil, fmt.Errorf("load project: %w", err)
	}
	s.touch(path, project.Name)
	return project, nil
}

// Export writes the categorized dataset to a delimited file.
func (s *ProjectService) Export(project *domain.Project, path string) error {
	logger.Section("Export")
	if project.Dataset.Empty() {
		return domain.ErrNoDataset
	}
	logger.Info("Exporting %q to %q (%s mode)", project.Name, path, project.Mode)
	if err := s.exporter.Export(path, project); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// readDataset picks a reader by file type and validates the result.
func (s *ProjectService) readDataset(path string) (*domain.Dataset, error) {
	var reader driven.DatasetReader
	for _, r := range s.readers {
		if r.Supports(path) {
			reader = r
			break
		}
	}
	if reader == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrImportFormat, filepath.Ext(path))
	}

	dataset, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if dataset.Empty() {
		return nil, fmt.Errorf("%w: dataset is empty", domain.ErrImportFormat)
	}
	if len(dataset.Columns) < 1 {
		return nil, fmt.Errorf(
			"%w: need an identifier column and at least one response column",
			domain.ErrImportFormat)
	}

	seen := make(map[string]bool)
	for _, id := range dataset.RowIDs() {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate identifier %q", domain.ErrImportFormat, id)
		}
		seen[id] = true
	}
	return dataset, nil
}

// touch records the project in the recent-session history, if available.
func (s *ProjectService) touch(path, name string) {
	if s.session == nil {
		return
	}
	if err := s.session.Touch(path, name); err != nil {
		logger.Warn("Session history update failed: %v", err)
	}
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func indexOf(list []string, v string) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return 0
}
