package services

import (
	"fmt"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure CodeframeService implements the interface.
var _ driving.CodeframeService = (*CodeframeService)(nil)

// CodeframeService manages the category set of a project.
type CodeframeService struct{}

// NewCodeframeService creates a new codeframe service.
func NewCodeframeService() *CodeframeService {
	return &CodeframeService{}
}

// Create adds a category to the project's codeframe.
func (s *CodeframeService) Create(project *domain.Project, name string) error {
	logger.Info("Creating category %q", name)
	if err := project.CreateCategory(name); err != nil {
		logger.Warn("Create category %q: %v", name, err)
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Rename changes a category name, updating every ledger entry.
func (s *CodeframeService) Rename(project *domain.Project, old, new string) error {
	logger.Info("Renaming category %q to %q", old, new)
	if err := project.RenameCategory(old, new); err != nil {
		logger.Warn("Rename category %q: %v", old, err)
		return fmt.Errorf("rename category: %w", err)
	}
	return nil
}

// Delete removes a category; its responses return to Uncategorized
// unless they hold another category.
func (s *CodeframeService) Delete(project *domain.Project, name string) error {
	logger.Info("Deleting category %q", name)
	if err := project.DeleteCategory(name); err != nil {
		logger.Warn("Delete category %q: %v", name, err)
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Metrics returns display metrics for every category plus Uncategorized.
// Counts are response occurrences (not deduplicated texts), matching what
// the original survey-coding workflow reports.
func (s *CodeframeService) Metrics(project *domain.Project, includeMissing bool) []domain.CategoryMetric {
	total := len(project.Dataset.Responses)
	if !includeMissing {
		total -= project.Dataset.MissingCount()
	}

	metric := func(name string, count int) domain.CategoryMetric {
		m := domain.CategoryMetric{Name: name, Count: count}
		if total > 0 {
			m.Percentage = float64(count) / float64(total) * 100
		}
		return m
	}

	var metrics []domain.CategoryMetric
	for _, name := range project.Codeframe.Names() {
		metrics = append(metrics, metric(name, len(project.Ledger.InCategory(name))))
	}
	metrics = append(metrics, metric(domain.Uncategorized, len(project.Uncategorized())))

	logger.Dump("Category metrics", map[string]any{
		"categories": len(metrics) - 1,
		"responses":  total,
	})
	return metrics
}
