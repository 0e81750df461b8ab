package domain

// Default limits for search and suggestions.
const (
	// DefaultSearchLimit caps a result list when no limit is given.
	DefaultSearchLimit = 10

	// MaxSuggestions caps the autocomplete suggestion list.
	MaxSuggestions = 8

	// MinQueryLength is the shortest trimmed query that triggers a search.
	MinQueryLength = 2
)

// Fuzzy-match thresholds per field. Smaller is stricter.
const (
	// TitleThreshold applies when matching query terms against titles.
	TitleThreshold = 0.25

	// FieldThreshold applies to keywords, categories and offices.
	FieldThreshold = 0.3

	// SuggestionThreshold applies when fuzzy-matching curated suggestions.
	SuggestionThreshold = 0.4
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Category filters results to a category, matched by exact category id
	// or case-insensitive substring of the category name.
	Category string

	// Limit is the maximum number of results. Zero means DefaultSearchLimit.
	Limit int
}

// ScoredResult is a ServiceRecord annotated with its relevance score and
// the query that produced it. Transient: created per search call.
type ScoredResult struct {
	ServiceRecord

	// Score is the heuristic relevance score. Always positive; records
	// scoring zero are excluded from results.
	Score int `json:"score"`

	// Query is the raw query string that triggered this result.
	Query string `json:"query"`
}

// SuggestionBundle groups the three suggestion lists returned for a query.
// Short queries populate Popular and Recent; longer queries populate
// Suggestions and leave the other two empty.
type SuggestionBundle struct {
	Popular     []string `json:"popular"`
	Recent      []string `json:"recent"`
	Suggestions []string `json:"suggestions"`
}
