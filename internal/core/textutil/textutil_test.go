package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Apple Pie", "apple pie"},
		{"collapses whitespace", "apple   \t pie", "apple pie"},
		{"strips punctuation", "apple, pie!", "apple pie"},
		{"trims", "  apple  ", "apple"},
		{"keeps digits", "route 66", "route 66"},
		{"folds fullwidth digits", "ｒｏｕｔｅ ６６", "route 66"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
		{"only whitespace", "   \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
