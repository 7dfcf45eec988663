package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

func TestAssignmentService_Categorize_SingleModeInvariantSurvivesRepeats(t *testing.T) {
	svc := NewAssignmentService()
	p := matchProject(t, "apple")
	require.NoError(t, p.CreateCategory("Fruit"))
	require.NoError(t, p.CreateCategory("Snack"))
	k := []domain.ResponseKey{{Row: "1", Column: "answer"}}

	require.NoError(t, svc.Categorize(p, k, []string{"Fruit"}))
	require.NoError(t, svc.Categorize(p, k, []string{"Snack"}))
	require.NoError(t, svc.Categorize(p, k, []string{"Fruit"}))

	assert.Equal(t, 1, p.Ledger.MaxAssignments())
	assert.Equal(t, []string{"Fruit"}, p.Ledger.Categories(k[0]))
	require.NoError(t, p.Validate())
}

func TestAssignmentService_ResponsesIn_DeduplicatesAndSorts(t *testing.T) {
	svc := NewAssignmentService()
	p := matchProject(t, "banana", "apple", "apple", "cherry")
	require.NoError(t, p.CreateCategory("Fruit"))

	var keys []domain.ResponseKey
	for _, r := range p.Dataset.Responses {
		keys = append(keys, r.Key)
	}
	require.NoError(t, svc.Categorize(p, keys, []string{"Fruit"}))

	counts, err := svc.ResponsesIn(p, "Fruit")
	require.NoError(t, err)

	require.Len(t, counts, 3)
	// Most frequent first, then alphabetical.
	assert.Equal(t, "apple", counts[0].Norm)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, "banana", counts[1].Norm)
	assert.Equal(t, "cherry", counts[2].Norm)
}

func TestAssignmentService_ResponsesIn_UnknownCategory(t *testing.T) {
	svc := NewAssignmentService()
	p := matchProject(t, "apple")

	_, err := svc.ResponsesIn(p, "Ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestAssignmentService_ResponsesIn_Uncategorized(t *testing.T) {
	svc := NewAssignmentService()
	p := matchProject(t, "apple", "banana")

	counts, err := svc.ResponsesIn(p, domain.Uncategorized)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
}
