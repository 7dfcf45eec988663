package driving

import (
	"context"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

// MatchService scores responses against a query term.
type MatchService interface {
	// Match scores every response in the pool against query and returns
	// the hits at or above the threshold, deduplicated by normalised
	// text, sorted by score descending then occurrence count descending
	// then first-occurrence row order. The pool is the uncategorized
	// responses unless opts.IncludeCategorized widens it.
	//
	// An empty result is a normal outcome. Returns domain.ErrEmptyQuery
	// for a blank query and domain.ErrInvalidThreshold for a threshold
	// outside 0-100.
	Match(ctx context.Context, project *domain.Project, query string, opts domain.MatchOptions) ([]domain.Match, error)
}
