package textindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation stripped",
			input: "Birth Certificate!",
			want:  []string{"birth", "certificate"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only punctuation",
			input: "?!, - .",
			want:  nil,
		},
		{
			name:  "short tokens dropped",
			input: "a Tricycle Franchise",
			want:  []string{"tricycle", "franchise"},
		},
		{
			name:  "whitespace runs collapse",
			input: "  real   property\ttax ",
			want:  []string{"real", "property", "tax"},
		},
		{
			name:  "digits kept",
			input: "Form 137",
			want:  []string{"form", "137"},
		},
		{
			name:  "mixed case lowered",
			input: "PWD ID Application",
			want:  []string{"pwd", "id", "application"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	input := "Community Tax Certificate (Cedula)"
	first := Tokenize(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Tokenize(input))
	}
}
