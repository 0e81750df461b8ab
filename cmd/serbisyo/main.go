// Command serbisyo is a typo-tolerant search tool for the municipal
// service catalog. Run it without arguments for the interactive UI, or
// see `serbisyo --help` for the one-shot commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/catalog/file"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/catalog/httpjson"
	configfile "github.com/civika-labs/serbisyo-cli/internal/adapters/driven/config/file"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/storage/memory"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/storage/sqlite"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/cli"
	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
	"github.com/civika-labs/serbisyo-cli/internal/core/services"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
)

// Build-time variables set via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := domain.DefaultSettings()

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		// Config is optional; fall back to defaults.
		logger.Warn("Config unavailable, using defaults: %v", err)
	} else {
		settings = configfile.LoadSettings(configStore)
		cli.SetConfigStore(configStore)
	}

	var source driven.CatalogSource
	if settings.CatalogPath != "" {
		source = file.NewSource(settings.CatalogPath)
	} else {
		source = httpjson.NewSource(settings.CatalogURL, settings.FetchTimeout)
	}

	catalogService := services.NewCatalogService(source)
	catalogService.WatchSource(context.Background())

	searchService := services.NewSearchService(catalogService, settings.CacheTTL)

	var kv driven.KeyValueStore
	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		logger.Warn("Analytics storage unavailable, falling back to memory: %v", err)
		kv = memory.NewKeyValueStore()
	} else {
		defer store.Close()
		kv = store
	}

	suggestService := services.NewSuggestService(kv, catalogService)

	cli.SetServices(searchService, suggestService, catalogService)
	cli.SetSettings(settings)
	cli.SetVersion(version)

	return cli.Execute()
}
