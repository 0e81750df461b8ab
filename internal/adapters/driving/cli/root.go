// Package cli implements the command-line interface for Serbisyo using
// cobra. Commands are thin adapters over the driving port services.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driving"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	searchService  driving.SearchService
	suggestService driving.SuggestService
	catalogService driving.CatalogService
	configStore    driven.ConfigStore
	appSettings    = domain.DefaultSettings()
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "serbisyo",
	Short: "Fuzzy search over the municipal service catalog",
	Long: `Serbisyo is a typo-tolerant search tool for the municipal service
catalog: find the right office, fee and processing time for permits,
certificates and other government services.

Run without arguments in a terminal to start the interactive UI, or use
the search command directly:

  serbisyo search "birth certificate"
  serbisyo search -c business permit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the core services the commands run against.
func SetServices(search driving.SearchService, suggest driving.SuggestService, catalog driving.CatalogService) {
	searchService = search
	suggestService = suggest
	catalogService = catalog
}

// SetConfigStore injects the configuration store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetSettings injects the resolved application settings.
func SetSettings(settings domain.AppSettings) {
	appSettings = settings.Normalised()
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runRoot starts the TUI when attached to a terminal, otherwise prints
// usage (e.g. when invoked from a script or pipe).
func runRoot(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}
