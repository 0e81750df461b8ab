package domain

import (
	"time"

	"github.com/google/uuid"
)

// Catalog is an immutable snapshot of the service catalog. It is built once
// per load and shared read-only between concurrent searches.
type Catalog struct {
	// SnapshotID uniquely identifies this load for diagnostics.
	SnapshotID string

	// Services holds the validated records in catalog order.
	Services []ServiceRecord

	// LoadedAt is when the snapshot was fetched.
	LoadedAt time.Time

	// Fallback is true when the embedded default catalog was used
	// because the configured source could not be fetched.
	Fallback bool
}

// NewCatalog builds a snapshot around the given records.
func NewCatalog(services []ServiceRecord, fallback bool) *Catalog {
	return &Catalog{
		SnapshotID: uuid.NewString(),
		Services:   services,
		LoadedAt:   time.Now().UTC(),
		Fallback:   fallback,
	}
}

// Categories returns the unique {id, name} pairs in first-seen order.
// Records without a category id do not contribute an entry.
func (c *Catalog) Categories() []Category {
	seen := make(map[string]bool, len(c.Services))
	var out []Category
	for _, s := range c.Services {
		if s.CategoryID == "" || seen[s.CategoryID] {
			continue
		}
		seen[s.CategoryID] = true
		out = append(out, Category{ID: s.CategoryID, Name: s.Category})
	}
	return out
}

// CatalogDocument is the wire shape of the catalog source:
// a JSON document {"services": [...]}.
type CatalogDocument struct {
	Services []ServiceRecord `json:"services"`
}
