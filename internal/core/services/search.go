package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driving"
	"github.com/civika-labs/serbisyo-cli/internal/fuzzy"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
	"github.com/civika-labs/serbisyo-cli/internal/textindex"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Scoring weights. Tiers within a field are mutually exclusive: the first
// matching tier wins and the rest are skipped.
const (
	scoreTitleExactQuery    = 200 // full query equals title
	scoreTitleQuerySubstr   = 100 // full query contained in title
	scoreTitleTermExact     = 80
	scoreTitleTermPrefix    = 60
	scoreTitleTermSubstr    = 40
	scoreTitleTermFuzzy     = 20
	scoreKeywordExact       = 35
	scoreKeywordSubstr      = 20
	scoreKeywordFuzzy       = 10
	scoreCategorySubstr     = 15
	scoreCategoryFuzzy      = 8
	scoreDescriptionSubstr  = 10
	scoreOfficeSubstr       = 12
	scoreOfficeFuzzy        = 6
	scoreProcessingSubstr   = 8
	scoreBonusFee           = 2
	scoreBonusProcessing    = 2
	scoreBonusDescription   = 1
)

// resultCacheSize bounds the memoized query results. Catalogs are small,
// so this is generous.
const resultCacheSize = 256

// SearchService ranks catalog records against free-text queries using the
// per-field inverted index and fuzzy term matching.
type SearchService struct {
	catalog *CatalogService
	cache   *expirable.LRU[string, []domain.ScoredResult]
}

// NewSearchService creates a search service over a loaded catalog service.
// cacheTTL bounds how long an identical query may reuse its scored results;
// zero disables the cache.
func NewSearchService(catalog *CatalogService, cacheTTL time.Duration) *SearchService {
	s := &SearchService{catalog: catalog}
	if cacheTTL > 0 {
		s.cache = expirable.NewLRU[string, []domain.ScoredResult](resultCacheSize, nil, cacheTTL)
	}
	return s
}

// Search runs the query against the catalog and returns results ranked by
// descending score, capped at opts.Limit. Queries that trim to fewer than
// two characters, or tokenize to no terms, yield an empty list.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ScoredResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if len([]rune(query)) < domain.MinQueryLength {
		logger.Debug("Query below minimum length, returning no results")
		return []domain.ScoredResult{}, nil
	}

	terms := textindex.Tokenize(query)
	if len(terms) == 0 {
		logger.Debug("Query tokenized to nothing, returning no results")
		return []domain.ScoredResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	index, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}

	cacheKey := s.cacheKey(catalog.SnapshotID, query, opts.Category, limit)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			logger.Debug("Result cache hit (%d results)", len(cached))
			return cached, nil
		}
	}

	results := Rank(query, terms, catalog.Services, index, opts.Category, limit)
	logger.Info("Final results: %d", len(results))

	if s.cache != nil {
		s.cache.Add(cacheKey, results)
	}
	return results, nil
}

func (s *SearchService) cacheKey(snapshotID, query, category string, limit int) string {
	return fmt.Sprintf("%s|%s|%s|%d", snapshotID, strings.ToLower(query), strings.ToLower(category), limit)
}

// Rank gathers, filters, scores and orders candidates. It is exported for
// callers that hold records without a CatalogService. Index may be nil, in
// which case every record is a candidate; fine for small ad hoc inputs,
// inefficient for anything else.
func Rank(query string, terms []string, records []domain.ServiceRecord, index *textindex.Index, category string, limit int) []domain.ScoredResult {
	candidates := gatherCandidates(terms, records, index)
	logger.Debug("Candidates: %d of %d records", len(candidates), len(records))

	results := make([]domain.ScoredResult, 0, len(candidates))
	for _, pos := range candidates {
		if pos < 0 || pos >= len(records) {
			continue
		}
		rec := records[pos]

		if category != "" && !matchesCategory(rec, category) {
			continue
		}

		score := Score(rec, terms, query)
		if score <= 0 {
			continue
		}
		results = append(results, domain.ScoredResult{
			ServiceRecord: rec,
			Score:         score,
			Query:         query,
		})
	}

	// Stable: ties keep candidate iteration order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// gatherCandidates unions fuzzy postings matches for every term across the
// four indexed fields, returning positions in ascending order so ranking
// stays reproducible.
func gatherCandidates(terms []string, records []domain.ServiceRecord, index *textindex.Index) []int {
	if index == nil {
		// Unindexed fallback: every record is a candidate.
		all := make([]int, len(records))
		for i := range records {
			all[i] = i
		}
		return all
	}

	set := make(map[int]struct{})
	for _, term := range terms {
		for _, postings := range []map[string][]int{index.Title, index.Keyword, index.Category, index.Office} {
			for pos := range fuzzy.MatchPostings(term, postings, domain.FieldThreshold) {
				set[pos] = struct{}{}
			}
		}
	}

	out := make([]int, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// matchesCategory applies the category filter: exact category id OR
// case-insensitive substring of the category name.
func matchesCategory(rec domain.ServiceRecord, category string) bool {
	if rec.CategoryID == category {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Category), strings.ToLower(category))
}

// Score computes the weighted multi-field relevance of a record for the
// tokenized terms and the raw query.
func Score(rec domain.ServiceRecord, terms []string, rawQuery string) int {
	score := 0

	title := strings.ToLower(rec.Title)
	category := strings.ToLower(rec.Category)
	description := strings.ToLower(rec.Description)
	office := strings.ToLower(rec.Office)
	processing := strings.ToLower(rec.ProcessingTime)
	query := strings.ToLower(strings.TrimSpace(rawQuery))

	// Full-query match against the title outranks any per-term hit.
	switch {
	case title == query:
		score += scoreTitleExactQuery
	case strings.Contains(title, query):
		score += scoreTitleQuerySubstr
	}

	for _, term := range terms {
		switch {
		case title == term:
			score += scoreTitleTermExact
		case strings.HasPrefix(title, term):
			score += scoreTitleTermPrefix
		case strings.Contains(title, term):
			score += scoreTitleTermSubstr
		case fuzzy.Match(term, title, domain.TitleThreshold):
			score += scoreTitleTermFuzzy
		}

		for _, keyword := range rec.Keywords {
			kw := strings.ToLower(keyword)
			switch {
			case kw == term:
				score += scoreKeywordExact
			case strings.Contains(kw, term):
				score += scoreKeywordSubstr
			case fuzzy.Match(term, kw, domain.FieldThreshold):
				score += scoreKeywordFuzzy
			}
		}

		switch {
		case strings.Contains(category, term):
			score += scoreCategorySubstr
		case fuzzy.Match(term, category, domain.FieldThreshold):
			score += scoreCategoryFuzzy
		}

		if strings.Contains(description, term) {
			score += scoreDescriptionSubstr
		}

		// Records without an office still take the fuzzy office tier:
		// the containment fast path matches "" against every term.
		switch {
		case strings.Contains(office, term):
			score += scoreOfficeSubstr
		case fuzzy.Match(term, office, domain.FieldThreshold):
			score += scoreOfficeFuzzy
		}

		// Lets queries like "same day" reward fast services.
		if strings.Contains(processing, term) {
			score += scoreProcessingSubstr
		}
	}

	// Completeness bonus, once per record.
	if rec.Fee != "" {
		score += scoreBonusFee
	}
	if rec.ProcessingTime != "" {
		score += scoreBonusProcessing
	}
	if rec.Description != "" {
		score += scoreBonusDescription
	}

	return score
}
