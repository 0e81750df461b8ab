package driving

import (
	"context"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// CatalogService owns the loaded catalog snapshot and its search index.
type CatalogService interface {
	// Load ensures the catalog is loaded, fetching it at most once.
	// Concurrent callers share a single in-flight fetch. Fetch failure
	// falls back to the embedded default catalog and is not an error.
	Load(ctx context.Context) (*domain.Catalog, error)

	// Categories lists the unique categories of the loaded catalog,
	// loading it first if needed.
	Categories(ctx context.Context) ([]domain.Category, error)

	// Validate reports ingestion issues (missing fields, duplicate ids,
	// malformed urls) found in the raw catalog document.
	Validate(ctx context.Context) ([]domain.ValidationIssue, error)

	// Invalidate drops the loaded snapshot so the next Load refetches.
	Invalidate()
}
