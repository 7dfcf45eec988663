package driven

// SimilarityScorer computes a fuzzy similarity score between a query and
// a candidate string on the 0-100 scale, higher meaning more similar.
// Inputs are already normalised by the caller.
type SimilarityScorer interface {
	// Score returns the similarity between query and candidate.
	Score(query, candidate string) int
}
