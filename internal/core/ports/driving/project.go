package driving

import "github.com/codify-labs/codify-cli/internal/core/domain"

// ProjectService manages project lifecycle: import, append, save, load
// and export.
type ProjectService interface {
	// Import creates a new project from a tabular data file.
	Import(path string) (*domain.Project, error)

	// Append imports another file with the same column shape into the
	// project. Responses whose text is already categorized inherit the
	// existing assignments; everything else starts uncategorized.
	Append(project *domain.Project, path string) error

	// Save persists the project to a project file.
	Save(project *domain.Project, path string) error

	// Load reads a project file. The current in-memory project is left
	// untouched on failure.
	Load(path string) (*domain.Project, error)

	// Export writes the categorized dataset to a delimited file.
	Export(project *domain.Project, path string) error
}
