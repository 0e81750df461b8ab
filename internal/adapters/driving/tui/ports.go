package tui

import (
	"errors"

	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driving"
)

// Ports bundles the driving port services the TUI runs against.
type Ports struct {
	// Search executes catalog queries.
	Search driving.SearchService

	// Suggest provides suggestions, recent and popular searches.
	Suggest driving.SuggestService

	// Catalog owns the loaded catalog snapshot.
	Catalog driving.CatalogService
}

// Validate checks that the required ports are wired.
func (p Ports) Validate() error {
	if p.Search == nil {
		return errors.New("search service is required")
	}
	if p.Suggest == nil {
		return errors.New("suggest service is required")
	}
	return nil
}
