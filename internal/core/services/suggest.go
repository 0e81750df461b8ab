package services

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driving"
	"github.com/civika-labs/serbisyo-cli/internal/fuzzy"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
	"github.com/civika-labs/serbisyo-cli/internal/textindex"
)

// Ensure SuggestService implements the interface.
var _ driving.SuggestService = (*SuggestService)(nil)

// Storage keys for the key-value store.
const (
	analyticsKey = "serbisyo_search_analytics"
	recentKey    = "serbisyo_recent_searches"
)

// curatedPopular backs the popular-searches list until real analytics
// accumulate. Order matters: backfill preserves it.
var curatedPopular = []string{
	"birth certificate", "business permit", "cedula", "real property tax",
	"senior citizen id", "pwd id", "barangay clearance", "building permit",
	"marriage certificate", "death certificate", "tricycle franchise",
	"property declaration", "online payment", "mswdo", "slaughterhouse",
}

// SuggestService maintains the search side-channel: per-query analytics,
// the recent-search list, and typed-ahead suggestions. Everything routed
// through the key-value store is best-effort; a nil or failing store
// degrades to empty reads and dropped writes.
type SuggestService struct {
	store   driven.KeyValueStore
	catalog *CatalogService
	now     func() time.Time
}

// NewSuggestService creates a suggestion service. store may be nil.
func NewSuggestService(store driven.KeyValueStore, catalog *CatalogService) *SuggestService {
	return &SuggestService{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
}

// RecordSearch upserts the analytics entry for query: existing entries
// (case-insensitive) get their count incremented and timestamp refreshed,
// new ones start at count 1. Entries stay sorted by descending count and
// capped at domain.MaxAnalyticsEntries, keeping the highest counts.
func (s *SuggestService) RecordSearch(query string, resultCount int) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < domain.MinQueryLength {
		return
	}

	stats := s.readStats()
	found := false
	for i := range stats {
		if strings.EqualFold(stats[i].Query, query) {
			stats[i].Count++
			stats[i].LastSearched = s.now()
			found = true
			break
		}
	}
	if !found {
		stats = append(stats, domain.SearchStat{
			Query:        query,
			Count:        1,
			ResultCount:  resultCount,
			LastSearched: s.now(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if len(stats) > domain.MaxAnalyticsEntries {
		stats = stats[:domain.MaxAnalyticsEntries]
	}

	s.writeJSON(analyticsKey, stats)
}

// SearchStats returns the stored analytics entries, highest count first.
func (s *SuggestService) SearchStats() []domain.SearchStat {
	return s.readStats()
}

// PopularSearches returns up to limit query strings: analytics entries
// searched at least domain.MinPopularCount times first, then curated terms
// in curated order, skipping duplicates.
func (s *SuggestService) PopularSearches(limit int) []string {
	if limit <= 0 {
		return nil
	}

	popular := make([]string, 0, limit)
	for _, stat := range s.readStats() {
		if stat.Count < domain.MinPopularCount {
			continue
		}
		popular = append(popular, stat.Query)
		if len(popular) == limit {
			return popular
		}
	}

	for _, term := range curatedPopular {
		if len(popular) == limit {
			break
		}
		if !containsFold(popular, term) {
			popular = append(popular, term)
		}
	}
	return popular
}

// RecentSearches returns the most-recent-first deduplicated query list.
func (s *SuggestService) RecentSearches() []string {
	var recent []string
	if !s.readJSON(recentKey, &recent) {
		return nil
	}
	return recent
}

// AddRecentSearch inserts query at the front of the recent list, moving it
// there if already present (case-insensitive), and caps the list at
// domain.MaxRecentSearches.
func (s *SuggestService) AddRecentSearch(query string) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < domain.MinQueryLength {
		return
	}

	recent := s.RecentSearches()
	kept := make([]string, 0, len(recent)+1)
	kept = append(kept, query)
	for _, q := range recent {
		if !strings.EqualFold(q, query) {
			kept = append(kept, q)
		}
	}
	if len(kept) > domain.MaxRecentSearches {
		kept = kept[:domain.MaxRecentSearches]
	}

	s.writeJSON(recentKey, kept)
}

// ClearRecentSearches empties the recent list.
func (s *SuggestService) ClearRecentSearches() {
	if s.store == nil {
		return
	}
	s.store.TryDelete(recentKey)
}

// SuggestionsFor returns the suggestion bundle for a partial query.
// Short queries get the popular and recent lists; longer queries get up to
// domain.MaxSuggestions autocomplete entries drawn from matching titles,
// vocabulary prefix matches, and curated terms (substring or fuzzy at
// domain.SuggestionThreshold), in insertion order without duplicates.
func (s *SuggestService) SuggestionsFor(query string) domain.SuggestionBundle {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < domain.MinQueryLength {
		return domain.SuggestionBundle{
			Popular:     s.PopularSearches(4),
			Recent:      capList(s.RecentSearches(), 3),
			Suggestions: []string{},
		}
	}

	lower := strings.ToLower(query)
	seen := make(map[string]struct{})
	suggestions := make([]string, 0, domain.MaxSuggestions)
	add := func(term string) {
		if len(suggestions) >= domain.MaxSuggestions {
			return
		}
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		suggestions = append(suggestions, term)
	}

	catalog, index := s.snapshot()

	if catalog != nil {
		for _, rec := range catalog.Services {
			if strings.Contains(strings.ToLower(rec.Title), lower) {
				add(rec.Title)
			}
		}
	}

	if index != nil {
		// Sorted walk keeps suggestion order deterministic across runs.
		terms := make([]string, 0, len(index.Terms))
		for term := range index.Terms {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			if term != lower && strings.HasPrefix(term, lower) {
				add(term)
			}
		}
	}

	for _, term := range curatedPopular {
		if strings.Contains(term, lower) || fuzzy.Match(lower, term, domain.SuggestionThreshold) {
			add(term)
		}
	}

	return domain.SuggestionBundle{
		Popular:     []string{},
		Recent:      []string{},
		Suggestions: suggestions,
	}
}

// snapshot returns the already-loaded catalog and index without triggering
// a fetch. Suggestions are not worth blocking a keystroke on a network
// call; before the first load they simply draw from curated terms.
func (s *SuggestService) snapshot() (*domain.Catalog, *textindex.Index) {
	if s.catalog == nil {
		return nil, nil
	}
	return s.catalog.Snapshot()
}

func (s *SuggestService) readStats() []domain.SearchStat {
	var stats []domain.SearchStat
	if !s.readJSON(analyticsKey, &stats) {
		return nil
	}
	return stats
}

// readJSON decodes the stored value for key into v. Missing or corrupt
// values read as absent, per the best-effort storage contract.
func (s *SuggestService) readJSON(key string, v any) bool {
	if s.store == nil {
		return false
	}
	raw, ok := s.store.TryGet(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Warn("Corrupt %s entry ignored: %v", key, err)
		return false
	}
	return true
}

func (s *SuggestService) writeJSON(key string, v any) {
	if s.store == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Encoding %s failed: %v", key, err)
		return
	}
	if !s.store.TrySet(key, string(raw)) {
		logger.Debug("Dropped %s write (storage unavailable)", key)
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
