package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration stored in ~/.serbisyo/config.toml.

Keys:
  catalog.url              catalog endpoint URL
  catalog.path             local catalog file (overrides the URL)
  catalog.fetch_timeout_ms catalog fetch timeout
  storage.data_dir         analytics database directory
  search.limit             default result limit
  search.debounce_ms       TUI debounce interval
  search.cache_ttl_ms      result cache lifetime`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings := appSettings

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Println("[Catalog]")
	if settings.CatalogPath != "" {
		cmd.Printf("  Source: %s (local file)\n", settings.CatalogPath)
	} else {
		cmd.Printf("  Source: %s\n", settings.CatalogURL)
	}
	cmd.Printf("  Fetch timeout: %s\n", settings.FetchTimeout)
	cmd.Println()
	cmd.Println("[Search]")
	cmd.Printf("  Result limit: %d\n", settings.SearchLimit)
	cmd.Printf("  Debounce: %s\n", settings.DebounceInterval)
	cmd.Printf("  Cache TTL: %s\n", settings.CacheTTL)
	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store numbers as numbers so integer keys round-trip through TOML.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	cmd.Println("Restart serbisyo for the change to take effect.")
	return nil
}
