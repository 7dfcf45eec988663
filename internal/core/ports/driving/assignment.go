package driving

import "github.com/codify-labs/codify-cli/internal/core/domain"

// AssignmentService mutates and queries response-to-category assignments.
type AssignmentService interface {
	// Categorize assigns the selected responses to the categories. Single
	// mode accepts exactly one category and overwrites prior assignments.
	Categorize(project *domain.Project, keys []domain.ResponseKey, categories []string) error

	// Recategorize moves the selection out of the category under review
	// into the new ones.
	Recategorize(project *domain.Project, keys []domain.ResponseKey, from string, categories []string) error

	// Uncategorized returns the responses not present in the ledger,
	// in import order.
	Uncategorized(project *domain.Project) []domain.Response

	// ResponsesIn lists a category's contents deduplicated by normalised
	// text with occurrence counts, sorted count descending then
	// alphabetically.
	ResponsesIn(project *domain.Project, category string) ([]domain.ResponseCount, error)
}
