package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"birth", "birth", 0},
		{"birth", "brith", 2}, // transposition costs two unit edits
		{"kitten", "sitting", 3},
		{"permit", "permits", 1},
		{"cedula", "sedula", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "certificate", "real property tax"} {
		assert.Zero(t, Distance(s, s))
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"birth", "brith"},
		{"business", "busines"},
		{"clearance", "claerance"},
		{"", "tax"},
	}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]))
	}
}

func TestMatch_FastPath(t *testing.T) {
	// Containment matches regardless of similarity.
	assert.True(t, Match("cert", "certificate", 0.25))
	assert.True(t, Match("certificate", "cert", 0.25))
	assert.True(t, Match("bir", "birth", 0.25))

	// Known looseness: a 2-char term contained anywhere always matches.
	assert.True(t, Match("id", "residence", 0.25))
}

func TestMatch_Similarity(t *testing.T) {
	// "brith" vs "birth": distance 2 over length 5 = 0.6 similarity.
	// Accepted at 0.4, rejected at 0.25.
	assert.True(t, Match("brith", "birth", 0.4))
	assert.False(t, Match("brith", "birth", 0.25))

	// One substitution in a 6-char word survives the strict threshold.
	assert.True(t, Match("sedula", "cedula", 0.25))

	// Unrelated words never match.
	assert.False(t, Match("permit", "marriage", 0.3))
}

func TestMatch_EmptyIsContainedInEverything(t *testing.T) {
	// The containment fast path treats "" as a substring of any term, so
	// an empty target matches every term. Scoring relies on this: records
	// without an office still collect the fuzzy office tier.
	assert.True(t, Match("permit", "", 0.3))
	assert.True(t, Match("", "birth", 0.3))
	assert.True(t, Match("", "", 0.3))
}

func TestMatchPostings(t *testing.T) {
	postings := map[string][]int{
		"birth":       {0, 2},
		"business":    {1},
		"certificate": {0, 3},
	}

	// Exact key plus fuzzy neighbours.
	got := MatchPostings("birth", postings, 0.3)
	assert.Contains(t, got, 0)
	assert.Contains(t, got, 2)
	assert.NotContains(t, got, 1)

	// Misspelling reaches the same postings via similarity.
	got = MatchPostings("brith", postings, 0.4)
	assert.Contains(t, got, 0)
	assert.Contains(t, got, 2)

	// No match yields an empty set, not nil panics.
	got = MatchPostings("zoning", postings, 0.25)
	assert.Empty(t, got)
}
