// Package fuzzwuzz adapts the go-fuzzywuzzy library to the
// SimilarityScorer port. WRatio is the weighted combination of several
// ratio strategies on a 0-100 scale, which keeps score semantics stable
// for users coming from thefuzz-based tooling.
package fuzzwuzz

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.SimilarityScorer = (*Scorer)(nil)

// Scorer scores string similarity with fuzzywuzzy's WRatio.
type Scorer struct{}

// NewScorer creates a new WRatio scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns the weighted ratio between query and candidate (0-100).
func (s *Scorer) Score(query, candidate string) int {
	if query == "" || candidate == "" {
		return 0
	}
	return fuzzy.WRatio(query, candidate)
}
