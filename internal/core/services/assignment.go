package services

import (
	"fmt"
	"sort"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure AssignmentService implements the interface.
var _ driving.AssignmentService = (*AssignmentService)(nil)

// AssignmentService mutates and queries the assignment ledger.
type AssignmentService struct{}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService() *AssignmentService {
	return &AssignmentService{}
}

// Categorize assigns the selected responses to the categories.
func (s *AssignmentService) Categorize(
	project *domain.Project, keys []domain.ResponseKey, categories []string,
) error {
	logger.Info("Categorizing %d responses into %v", len(keys), categories)
	if err := project.Categorize(keys, categories); err != nil {
		logger.Warn("Categorize: %v", err)
		return fmt.Errorf("categorize: %w", err)
	}
	return nil
}

// Recategorize moves the selection out of the reviewed category into the
// new ones.
func (s *AssignmentService) Recategorize(
	project *domain.Project, keys []domain.ResponseKey, from string, categories []string,
) error {
	logger.Info("Recategorizing %d responses from %q into %v", len(keys), from, categories)
	if err := project.Recategorize(keys, from, categories); err != nil {
		logger.Warn("Recategorize: %v", err)
		return fmt.Errorf("recategorize: %w", err)
	}
	return nil
}

// Uncategorized returns the responses not present in the ledger.
func (s *AssignmentService) Uncategorized(project *domain.Project) []domain.Response {
	return project.Uncategorized()
}

// ResponsesIn lists a category's contents deduplicated by normalised text
// with occurrence counts, sorted count descending then alphabetically.
func (s *AssignmentService) ResponsesIn(
	project *domain.Project, category string,
) ([]domain.ResponseCount, error) {
	responses, err := project.InCategory(category)
	if err != nil {
		return nil, fmt.Errorf("responses in category: %w", err)
	}

	grouped := make(map[string]*domain.ResponseCount)
	var order []string
	for _, r := range responses {
		rc, ok := grouped[r.Norm]
		if !ok {
			rc = &domain.ResponseCount{Text: r.Text, Norm: r.Norm}
			grouped[r.Norm] = rc
			order = append(order, r.Norm)
		}
		rc.Count++
		rc.Keys = append(rc.Keys, r.Key)
	}

	out := make([]domain.ResponseCount, 0, len(order))
	for _, norm := range order {
		out = append(out, *grouped[norm])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Norm < out[j].Norm
	})

	logger.Debug("Category %q holds %d distinct texts", category, len(out))
	return out, nil
}
