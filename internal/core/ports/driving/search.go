package driving

import (
	"context"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// SearchService provides catalog search to external actors.
type SearchService interface {
	// Search runs a fuzzy full-text query over the catalog and returns
	// results ranked by descending score, capped at opts.Limit. Queries
	// shorter than two characters yield an empty list, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ScoredResult, error)
}

// SuggestService provides typed-ahead suggestions and the search
// side-channel (recent searches, analytics, popular queries).
// All operations are best-effort: storage failure degrades to empty
// reads and dropped writes, never errors.
type SuggestService interface {
	// SuggestionsFor returns the suggestion bundle for a partial query.
	// Queries shorter than two characters get popular and recent lists;
	// longer queries get autocomplete suggestions.
	SuggestionsFor(query string) domain.SuggestionBundle

	// RecordSearch upserts the analytics entry for a query.
	RecordSearch(query string, resultCount int)

	// PopularSearches returns up to limit queries, repeat searches first,
	// backfilled from the curated list.
	PopularSearches(limit int) []string

	// RecentSearches returns the most-recent-first deduplicated list.
	RecentSearches() []string

	// AddRecentSearch moves or inserts a query at the front.
	AddRecentSearch(query string)

	// ClearRecentSearches empties the recent list.
	ClearRecentSearches()
}
