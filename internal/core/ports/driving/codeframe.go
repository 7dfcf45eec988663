package driving

import "github.com/codify-labs/codify-cli/internal/core/domain"

// CodeframeService manages the category set of a project.
type CodeframeService interface {
	// Create adds a category. Names are case-sensitive and trimmed;
	// duplicates return domain.ErrDuplicateCategory.
	Create(project *domain.Project, name string) error

	// Rename changes a category name, updating every assignment.
	Rename(project *domain.Project, old, new string) error

	// Delete removes a category. Responses assigned only to it return to
	// Uncategorized; deletion is never blocked.
	Delete(project *domain.Project, name string) error

	// Metrics returns per-category response counts and percentages,
	// including the Uncategorized bucket. When includeMissing is false,
	// missing cells are left out of the percentage denominator.
	Metrics(project *domain.Project, includeMissing bool) []domain.CategoryMetric
}
