package file

import (
	"time"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
)

// Configuration keys for application settings.
const (
	keyCatalogURL     = "catalog.url"
	keyCatalogPath    = "catalog.path"
	keyFetchTimeoutMS = "catalog.fetch_timeout_ms"
	keyDataDir        = "storage.data_dir"
	keySearchLimit    = "search.limit"
	keyDebounceMS     = "search.debounce_ms"
	keyCacheTTLMS     = "search.cache_ttl_ms"
)

// LoadSettings reads application settings from the config store, applying
// defaults for anything unset.
func LoadSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.AppSettings{
		CatalogURL:       store.GetString(keyCatalogURL),
		CatalogPath:      store.GetString(keyCatalogPath),
		DataDir:          store.GetString(keyDataDir),
		SearchLimit:      store.GetInt(keySearchLimit),
		DebounceInterval: time.Duration(store.GetInt(keyDebounceMS)) * time.Millisecond,
		FetchTimeout:     time.Duration(store.GetInt(keyFetchTimeoutMS)) * time.Millisecond,
		CacheTTL:         time.Duration(store.GetInt(keyCacheTTLMS)) * time.Millisecond,
	}
	return settings.Normalised()
}

// SaveSettings persists application settings to the config store.
func SaveSettings(store driven.ConfigStore, settings domain.AppSettings) error {
	settings = settings.Normalised()

	values := map[string]any{
		keyCatalogURL:     settings.CatalogURL,
		keyCatalogPath:    settings.CatalogPath,
		keyDataDir:        settings.DataDir,
		keySearchLimit:    settings.SearchLimit,
		keyDebounceMS:     int(settings.DebounceInterval / time.Millisecond),
		keyFetchTimeoutMS: int(settings.FetchTimeout / time.Millisecond),
		keyCacheTTLMS:     int(settings.CacheTTL / time.Millisecond),
	}
	for key, value := range values {
		if err := store.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}
