package textindex

import (
	"strings"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// Index maps terms to record positions, one postings map per searchable
// field. Positions refer to the catalog slice the index was built from.
// An Index is immutable once Build returns and safe for concurrent reads.
type Index struct {
	// Title maps title tokens to record positions.
	Title map[string][]int

	// Keyword maps whole lowercased keywords to record positions.
	// Keywords are not re-tokenized: "real property tax" is one term.
	Keyword map[string][]int

	// Category maps category tokens to record positions.
	Category map[string][]int

	// Office maps office tokens to record positions.
	Office map[string][]int

	// Terms is the vocabulary used for prefix autocomplete. It holds
	// title and keyword terms only; category and office terms are
	// searchable but never suggested.
	Terms map[string]struct{}
}

// Build constructs the index for a catalog snapshot. Records are indexed
// by position; callers must pass the same slice ordering to the scorer.
// Build is pure: the same records always produce the same index.
func Build(records []domain.ServiceRecord) *Index {
	idx := &Index{
		Title:    make(map[string][]int),
		Keyword:  make(map[string][]int),
		Category: make(map[string][]int),
		Office:   make(map[string][]int),
		Terms:    make(map[string]struct{}),
	}

	for pos, rec := range records {
		for _, tok := range Tokenize(rec.Title) {
			idx.Title[tok] = append(idx.Title[tok], pos)
			idx.Terms[tok] = struct{}{}
		}

		for _, kw := range rec.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			idx.Keyword[kw] = append(idx.Keyword[kw], pos)
			idx.Terms[kw] = struct{}{}
		}

		for _, tok := range Tokenize(rec.Category) {
			idx.Category[tok] = append(idx.Category[tok], pos)
		}

		for _, tok := range Tokenize(rec.Office) {
			idx.Office[tok] = append(idx.Office[tok], pos)
		}
	}

	return idx
}

// TermCount returns the vocabulary size.
func (i *Index) TermCount() int {
	if i == nil {
		return 0
	}
	return len(i.Terms)
}
