package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
	"github.com/codify-labs/codify-cli/internal/core/textutil"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService scores responses against a query using a fuzzy similarity
// scorer.
type MatchService struct {
	scorer driven.SimilarityScorer
}

// NewMatchService creates a new match service.
func NewMatchService(scorer driven.SimilarityScorer) *MatchService {
	return &MatchService{scorer: scorer}
}

// Match performs a single pass over the response pool. The scan blocks
// the caller for its duration; datasets are interactive-session sized so
// no cancellation beyond ctx is needed.
func (s *MatchService) Match(
	ctx context.Context, project *domain.Project, query string, opts domain.MatchOptions,
) ([]domain.Match, error) {
	logger.Section("Fuzzy Match")
	logger.Debug("Query: %q, threshold: %d", query, opts.Threshold)

	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	if !domain.ValidThreshold(opts.Threshold) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidThreshold, opts.Threshold)
	}
	if project.Dataset.Empty() {
		return nil, domain.ErrNoDataset
	}

	var pool []domain.Response
	if opts.IncludeCategorized {
		for _, r := range project.Dataset.Responses {
			if !r.Missing() {
				pool = append(pool, r)
			}
		}
	} else {
		pool = project.Uncategorized()
	}
	logger.Debug("Pool: %d responses (include categorized: %t)", len(pool), opts.IncludeCategorized)

	// Identical normalised texts share one score; group first, score once.
	normQuery := textutil.Normalize(query)
	grouped := make(map[string]*domain.Match)
	var order []string
	for _, r := range pool {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, ok := grouped[r.Norm]
		if !ok {
			m = &domain.Match{Text: r.Text, Norm: r.Norm}
			grouped[r.Norm] = m
			order = append(order, r.Norm)
		}
		m.Count++
		m.Keys = append(m.Keys, r.Key)
	}

	firstSeen := make(map[string]int, len(order))
	for i, norm := range order {
		firstSeen[norm] = i
	}

	var matches []domain.Match
	for _, norm := range order {
		score := s.scorer.Score(normQuery, norm)
		if score < opts.Threshold {
			continue
		}
		m := grouped[norm]
		m.Score = score
		matches = append(matches, *m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		return firstSeen[matches[i].Norm] < firstSeen[matches[j].Norm]
	})

	logger.Info("Match: %d of %d distinct texts at threshold %d",
		len(matches), len(order), opts.Threshold)
	return matches, nil
}
