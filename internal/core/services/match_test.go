package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

// tableScorer scores candidates from a fixed table; unknown candidates
// score zero.
type tableScorer struct {
	scores map[string]int
}

func (s *tableScorer) Score(_, candidate string) int {
	return s.scores[candidate]
}

func matchProject(t *testing.T, texts ...string) *domain.Project {
	t.Helper()

	var responses []domain.Response
	for i, text := range texts {
		responses = append(responses, domain.NewResponse(
			domain.ResponseKey{Row: string(rune('1' + i)), Column: "answer"}, text))
	}
	p := domain.NewProject("test")
	p.Dataset = domain.NewDataset("id", []string{"answer"}, responses)
	return p
}

func TestMatchService_Match_EmptyQuery(t *testing.T) {
	svc := NewMatchService(&tableScorer{})
	p := matchProject(t, "apple")

	_, err := svc.Match(context.Background(), p, "   ", domain.MatchOptions{Threshold: 50})
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestMatchService_Match_InvalidThreshold(t *testing.T) {
	svc := NewMatchService(&tableScorer{})
	p := matchProject(t, "apple")

	_, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)

	_, err = svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestMatchService_Match_NoDataset(t *testing.T) {
	svc := NewMatchService(&tableScorer{})
	p := domain.NewProject("empty")

	_, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 50})
	assert.ErrorIs(t, err, domain.ErrNoDataset)
}

func TestMatchService_Match_DeduplicatesIdenticalTexts(t *testing.T) {
	scorer := &tableScorer{scores: map[string]int{"apple": 90}}
	svc := NewMatchService(scorer)
	p := matchProject(t, "apple", "Apple!", "banana")

	matches, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 50})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "apple", matches[0].Norm)
	assert.Equal(t, 2, matches[0].Count)
	assert.Len(t, matches[0].Keys, 2)
}

func TestMatchService_Match_SortsByScoreThenCount(t *testing.T) {
	scorer := &tableScorer{scores: map[string]int{
		"apple":      95,
		"apple pie":  80,
		"applesauce": 80,
	}}
	svc := NewMatchService(scorer)
	p := matchProject(t, "applesauce", "apple pie", "apple pie", "apple")

	matches, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 70})
	require.NoError(t, err)

	require.Len(t, matches, 3)
	assert.Equal(t, "apple", matches[0].Norm)
	// Tie on 80 broken by count: "apple pie" appears twice.
	assert.Equal(t, "apple pie", matches[1].Norm)
	assert.Equal(t, "applesauce", matches[2].Norm)
}

func TestMatchService_Match_HigherThresholdYieldsSubset(t *testing.T) {
	scorer := &tableScorer{scores: map[string]int{
		"apple": 95, "apple pie": 80, "banana": 40,
	}}
	svc := NewMatchService(scorer)
	p := matchProject(t, "apple", "apple pie", "banana")

	low, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 30})
	require.NoError(t, err)
	high, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 85})
	require.NoError(t, err)

	lowNorms := make(map[string]bool)
	for _, m := range low {
		lowNorms[m.Norm] = true
	}
	for _, m := range high {
		assert.True(t, lowNorms[m.Norm], "hit %q missing from lower-threshold result", m.Norm)
	}
	assert.Greater(t, len(low), len(high))
}

func TestMatchService_Match_ExcludesCategorizedByDefault(t *testing.T) {
	scorer := &tableScorer{scores: map[string]int{"apple": 90, "apple pie": 90}}
	svc := NewMatchService(scorer)
	p := matchProject(t, "apple", "apple pie")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.Categorize(
		[]domain.ResponseKey{{Row: "1", Column: "answer"}}, []string{"Fruit"}))

	matches, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 50})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "apple pie", matches[0].Norm)

	all, err := svc.Match(context.Background(), p, "apple",
		domain.MatchOptions{Threshold: 50, IncludeCategorized: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMatchService_Match_EmptyResultIsNormal(t *testing.T) {
	svc := NewMatchService(&tableScorer{})
	p := matchProject(t, "banana")

	matches, err := svc.Match(context.Background(), p, "apple", domain.MatchOptions{Threshold: 80})
	require.NoError(t, err)
	assert.Empty(t, matches)
}
