package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.NotEmpty(t, s.CatalogURL)
	assert.Equal(t, DefaultSearchLimit, s.SearchLimit)
	assert.Equal(t, 150*time.Millisecond, s.DebounceInterval)
	assert.Equal(t, 5*time.Second, s.FetchTimeout)
}

func TestAppSettings_Normalised(t *testing.T) {
	s := AppSettings{}.Normalised()
	def := DefaultSettings()

	assert.Equal(t, def.CatalogURL, s.CatalogURL)
	assert.Equal(t, def.SearchLimit, s.SearchLimit)
	assert.Equal(t, def.DebounceInterval, s.DebounceInterval)
	assert.Equal(t, def.CacheTTL, s.CacheTTL)

	// A local catalog path suppresses the default URL.
	local := AppSettings{CatalogPath: "/tmp/services.json"}.Normalised()
	assert.Empty(t, local.CatalogURL)
	assert.Equal(t, "/tmp/services.json", local.CatalogPath)

	// Explicit values survive.
	custom := AppSettings{SearchLimit: 25, FetchTimeout: time.Second}.Normalised()
	assert.Equal(t, 25, custom.SearchLimit)
	assert.Equal(t, time.Second, custom.FetchTimeout)
}
