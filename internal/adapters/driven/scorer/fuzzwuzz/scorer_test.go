package fuzzwuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Score_Identical(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 100, s.Score("apple", "apple"))
}

func TestScorer_Score_Empty(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 0, s.Score("", "apple"))
	assert.Equal(t, 0, s.Score("apple", ""))
}

func TestScorer_Score_PartialMatchesScoreHigh(t *testing.T) {
	s := NewScorer()

	// A short query contained in a longer response still scores high,
	// the behaviour survey coders rely on.
	assert.GreaterOrEqual(t, s.Score("apple", "apple pie"), 80)
	assert.GreaterOrEqual(t, s.Score("apple", "i like apples"), 80)
}

func TestScorer_Score_UnrelatedScoresLow(t *testing.T) {
	s := NewScorer()
	assert.Less(t, s.Score("apple", "banana split"), 60)
}

func TestScorer_Score_Range(t *testing.T) {
	s := NewScorer()
	pairs := [][2]string{
		{"apple", "aple"},
		{"red apple", "green apple"},
		{"a", "zzzzzz"},
	}
	for _, p := range pairs {
		got := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}
