package driven

import (
	"context"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// CatalogSource fetches the raw service catalog document.
// Implementations: HTTP endpoint, local JSON file.
type CatalogSource interface {
	// Fetch retrieves the catalog document. The context bounds the fetch;
	// implementations must honour its deadline.
	Fetch(ctx context.Context) (*domain.CatalogDocument, error)

	// Describe returns a human-readable source location for logging.
	Describe() string
}

// CatalogWatcher is an optional extension of CatalogSource for sources
// that can report external changes (e.g. a local file edited on disk).
type CatalogWatcher interface {
	// Watch delivers a signal whenever the underlying catalog changes.
	// The channel closes when the context is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
