package domain

import "time"

// Storage caps for the persisted search side-channel.
const (
	// MaxRecentSearches caps the most-recent-first query list.
	MaxRecentSearches = 10

	// MaxAnalyticsEntries caps the stored per-query stats.
	MaxAnalyticsEntries = 100

	// MinPopularCount is the repeat count a query needs before it is
	// considered genuinely popular rather than curated backfill.
	MinPopularCount = 2
)

// SearchStat is a persisted analytics entry for one distinct query
// (case-insensitive). Entries are kept sorted by descending Count.
type SearchStat struct {
	// Query is the query text as first typed.
	Query string `json:"query"`

	// Count is how many times the query has been searched.
	Count int `json:"count"`

	// ResultCount is the number of results the first search returned.
	ResultCount int `json:"resultsCount"`

	// LastSearched is when the query was last run.
	LastSearched time.Time `json:"lastSearched"`
}
