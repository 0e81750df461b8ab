package domain

import "time"

// AppSettings holds user-tunable configuration for Serbisyo.
type AppSettings struct {
	// CatalogURL is the HTTP endpoint serving the catalog JSON document.
	CatalogURL string

	// CatalogPath is a local catalog file. When set it takes precedence
	// over CatalogURL.
	CatalogPath string

	// DataDir is where the analytics database lives.
	// Empty means ~/.serbisyo/data.
	DataDir string

	// SearchLimit is the default maximum number of results.
	SearchLimit int

	// DebounceInterval is how long the TUI waits after a keystroke
	// before searching.
	DebounceInterval time.Duration

	// FetchTimeout bounds the catalog fetch.
	FetchTimeout time.Duration

	// CacheTTL is how long a scored result list may be reused for an
	// identical query against the same catalog snapshot.
	CacheTTL time.Duration
}

// DefaultSettings returns the defaults applied when a field is unset.
func DefaultSettings() AppSettings {
	return AppSettings{
		CatalogURL:       "https://www.cainta.gov.ph/data/services.json",
		SearchLimit:      DefaultSearchLimit,
		DebounceInterval: 150 * time.Millisecond,
		FetchTimeout:     5 * time.Second,
		CacheTTL:         time.Minute,
	}
}

// Normalised returns a copy with zero values replaced by defaults.
func (s AppSettings) Normalised() AppSettings {
	def := DefaultSettings()
	if s.CatalogURL == "" && s.CatalogPath == "" {
		s.CatalogURL = def.CatalogURL
	}
	if s.SearchLimit <= 0 {
		s.SearchLimit = def.SearchLimit
	}
	if s.DebounceInterval <= 0 {
		s.DebounceInterval = def.DebounceInterval
	}
	if s.FetchTimeout <= 0 {
		s.FetchTimeout = def.FetchTimeout
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = def.CacheTTL
	}
	return s
}
