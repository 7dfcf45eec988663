package driven

import "github.com/codify-labs/codify-cli/internal/core/domain"

// ProjectStore persists whole projects. Only files written by Save are
// accepted by Load; anything else fails validation.
type ProjectStore interface {
	// Save serializes the project to path.
	Save(path string, project *domain.Project) error

	// Load reads and validates a project file. On any validation failure
	// it returns domain.ErrProjectValidation (wrapped with detail) and no
	// project; callers keep their current state.
	Load(path string) (*domain.Project, error)
}
