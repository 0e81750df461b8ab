package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driving"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
	"github.com/civika-labs/serbisyo-cli/internal/textindex"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService loads the service catalog once per session, validates and
// filters its records, and owns the search index built from them.
//
// Loading is single-flight: the first caller fetches while concurrent
// callers wait on the same in-flight load, so a burst of keystrokes before
// the catalog arrives triggers exactly one fetch.
type CatalogService struct {
	source driven.CatalogSource

	mu      sync.Mutex
	catalog *domain.Catalog
	index   *textindex.Index
	loaded  bool
	pending chan struct{} // non-nil while a load is in flight; closed on completion
}

// NewCatalogService creates a catalog service over the given source.
func NewCatalogService(source driven.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// Load ensures the catalog is loaded, fetching at most once. Fetch failure
// falls back to the embedded default catalog and is never an error: search
// must always have data to operate over.
func (s *CatalogService) Load(ctx context.Context) (*domain.Catalog, error) {
	for {
		s.mu.Lock()
		if s.loaded {
			cat := s.catalog
			s.mu.Unlock()
			return cat, nil
		}

		if s.pending != nil {
			// Another goroutine is fetching; wait for it and re-check.
			wait := s.pending
			s.mu.Unlock()
			select {
			case <-wait:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}

		done := make(chan struct{})
		s.pending = done
		s.mu.Unlock()

		catalog, index := s.fetch(ctx)

		s.mu.Lock()
		s.catalog = catalog
		s.index = index
		s.loaded = true
		s.pending = nil
		s.mu.Unlock()
		close(done)

		return catalog, nil
	}
}

// fetch retrieves and ingests the catalog, degrading to the fallback.
func (s *CatalogService) fetch(ctx context.Context) (*domain.Catalog, *textindex.Index) {
	logger.Section("Catalog Load")

	var records []domain.ServiceRecord
	fallback := false

	doc, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Warn("Catalog fetch from %s failed: %v; using embedded fallback", s.source.Describe(), err)
		records = FallbackServices()
		fallback = true
	} else {
		logger.Debug("Fetched %d raw records from %s", len(doc.Services), s.source.Describe())
		records = ingest(doc.Services)
		if len(records) == 0 {
			logger.Warn("Catalog from %s contained no valid records; using embedded fallback", s.source.Describe())
			records = FallbackServices()
			fallback = true
		}
	}

	catalog := domain.NewCatalog(records, fallback)
	index := textindex.Build(records)
	logger.Info("Catalog loaded: %d services, %d terms (snapshot %s)",
		len(records), index.TermCount(), catalog.SnapshotID)
	return catalog, index
}

// ingest validates raw records: malformed entries (missing title or
// category) are dropped silently, missing ids are slug-filled, and
// duplicate ids keep only the first occurrence.
func ingest(raw []domain.ServiceRecord) []domain.ServiceRecord {
	taken := make(map[string]bool, len(raw))
	records := make([]domain.ServiceRecord, 0, len(raw))

	for _, rec := range raw {
		if !rec.Valid() {
			logger.Debug("Dropping malformed record %q (missing title or category)", rec.ID)
			continue
		}
		rec.EnsureID(taken)
		key := strings.ToLower(rec.ID)
		if taken[key] {
			logger.Debug("Dropping record with duplicate id %q", rec.ID)
			continue
		}
		taken[key] = true
		records = append(records, rec)
	}
	return records
}

// Snapshot returns the already-loaded catalog and index without triggering
// a fetch. Both are nil until the first Load completes.
func (s *CatalogService) Snapshot() (*domain.Catalog, *textindex.Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil, nil
	}
	return s.catalog, s.index
}

// Index returns the search index for the loaded catalog, loading first if
// needed.
func (s *CatalogService) Index(ctx context.Context) (*textindex.Index, error) {
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, nil
}

// Categories lists the unique categories of the loaded catalog.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	catalog, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(), nil
}

// Validate fetches the raw document and reports ingestion issues without
// mutating the loaded snapshot. Unlike Load it surfaces fetch errors, since
// a validation run against the fallback catalog would be meaningless.
func (s *CatalogService) Validate(ctx context.Context) ([]domain.ValidationIssue, error) {
	doc, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog for validation: %w", err)
	}

	var issues []domain.ValidationIssue
	seen := make(map[string]string, len(doc.Services))
	for _, rec := range doc.Services {
		issues = append(issues, domain.ValidateRecord(rec)...)
		if rec.ID == "" {
			continue
		}
		key := strings.ToLower(rec.ID)
		if prev, dup := seen[key]; dup {
			issues = append(issues, domain.ValidationIssue{
				RecordID: rec.ID,
				Field:    "id",
				Message:  fmt.Sprintf("duplicate id (also used by %q)", prev),
			})
			continue
		}
		seen[key] = rec.Title
	}
	return issues, nil
}

// Invalidate drops the loaded snapshot so the next Load refetches.
// Used by file-backed sources when the catalog changes on disk.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		// A load is in flight; its result is already current.
		return
	}
	s.catalog = nil
	s.index = nil
	s.loaded = false
}

// WatchSource subscribes to change signals from a watchable source and
// invalidates the snapshot on each one. Returns false when the source
// cannot be watched.
func (s *CatalogService) WatchSource(ctx context.Context) bool {
	watcher, ok := s.source.(driven.CatalogWatcher)
	if !ok {
		return false
	}
	ch, err := watcher.Watch(ctx)
	if err != nil {
		logger.Warn("Catalog watch unavailable: %v", err)
		return false
	}
	go func() {
		for range ch {
			logger.Info("Catalog source changed; invalidating snapshot")
			s.Invalidate()
		}
	}()
	return true
}
