// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// SearchDebounced fires when the debounce interval elapses after a
// keystroke. Seq identifies the keystroke generation it belongs to;
// stale generations are dropped.
type SearchDebounced struct {
	Seq int
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Seq     int
	Query   string
	Results []domain.ScoredResult
	Err     error
}

// SuggestionsLoaded carries the suggestion bundle for the current query.
type SuggestionsLoaded struct {
	Seq    int
	Bundle domain.SuggestionBundle
}

// CatalogLoaded signals the background catalog load finished.
type CatalogLoaded struct {
	ServiceCount int
	Fallback     bool
	Err          error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search input and results view.
	ViewSearch ViewType = iota
	// ViewDetails shows a single service in full.
	ViewDetails
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewDetails:
		return "details"
	default:
		return "unknown"
	}
}
