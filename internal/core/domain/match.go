package domain

// MatchOptions configures a fuzzy match pass.
type MatchOptions struct {
	// Threshold is the minimum similarity score (0-100 inclusive).
	Threshold int

	// IncludeCategorized widens the pool to already-categorized responses,
	// used when the caller explicitly wants to recategorize.
	IncludeCategorized bool
}

// ValidThreshold reports whether t is inside the accepted 0-100 range.
func ValidThreshold(t int) bool {
	return t >= 0 && t <= 100
}

// Match is one fuzzy match hit: a deduplicated response text together
// with every response key that holds it.
type Match struct {
	// Text is the original text of the first occurrence.
	Text string

	// Norm is the normalised text the score was computed against.
	Norm string

	// Score is the similarity score (0-100).
	Score int

	// Count is the number of responses holding this text.
	Count int

	// Keys identifies every matching response, in import order.
	Keys []ResponseKey
}

// CategoryMetric summarises one category for display: how many responses
// it holds and what share of the dataset that is.
type CategoryMetric struct {
	// Name is the category name, or Uncategorized.
	Name string

	// Count is the number of responses assigned to the category.
	Count int

	// Percentage is Count relative to the total number of responses,
	// optionally excluding missing cells from the denominator.
	Percentage float64
}

// ResponseCount pairs a deduplicated response text with its occurrence
// count, for category-contents listings.
type ResponseCount struct {
	// Text is the original text of the first occurrence.
	Text string

	// Norm is the normalised text.
	Norm string

	// Count is the number of responses holding this text.
	Count int

	// Keys identifies the responses, in import order.
	Keys []ResponseKey
}
