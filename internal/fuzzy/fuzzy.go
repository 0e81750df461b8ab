// Package fuzzy implements edit-distance matching for search terms.
//
// Matching is threshold-based: two terms match when their Levenshtein
// similarity is close enough, or immediately when one contains the other.
// The containment fast path is part of the matching contract, not an
// optimisation: it accepts pairs that similarity alone would reject for
// very short strings, and it accepts the empty string against anything.
package fuzzy

import "strings"

// Distance returns the Levenshtein edit distance between a and b using
// unit-cost insertions, deletions and substitutions.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	// Two-row rolling matrix keeps allocation proportional to one term.
	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for j := 0; j <= len(ar); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(br); i++ {
		curr[0] = i
		for j := 1; j <= len(ar); j++ {
			if br[i-1] == ar[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(ar)]
}

// Match reports whether term and target are close enough under the given
// threshold (0.3 accepts up to 30% divergence). Containment in either
// direction matches immediately regardless of length; for 2-character
// terms this accepts very loose pairs, and an empty target matches every
// term (every string contains ""). Both quirks mirror the behaviour of
// the production search this engine reimplements and downstream scoring
// depends on them.
func Match(term, target string, threshold float64) bool {
	if strings.Contains(target, term) || strings.Contains(term, target) {
		return true
	}

	dist := Distance(term, target)
	maxLen := len([]rune(term))
	if l := len([]rune(target)); l > maxLen {
		maxLen = l
	}
	similarity := 1 - float64(dist)/float64(maxLen)
	return similarity >= 1-threshold
}

// MatchPostings returns the union of record positions for the exact term
// plus every indexed key that fuzzy-matches it at the given threshold.
//
// Each call walks the whole postings map, so cost grows with vocabulary
// size. That is acceptable for catalogs of tens to low hundreds of records
// and nothing larger.
func MatchPostings(term string, postings map[string][]int, threshold float64) map[int]struct{} {
	matches := make(map[int]struct{})

	for _, pos := range postings[term] {
		matches[pos] = struct{}{}
	}

	for key, positions := range postings {
		if key == term {
			continue
		}
		if Match(term, key, threshold) {
			for _, pos := range positions {
				matches[pos] = struct{}{}
			}
		}
	}
	return matches
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
