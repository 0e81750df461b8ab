package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Show search suggestions for a partial query",
	Long: `Shows autocomplete suggestions for a partial query, drawn from
service titles, the search vocabulary and common search terms. Very short
queries show popular and recent searches instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestService == nil {
		return errors.New("suggest service not configured")
	}

	// One-shot invocation: load the catalog up front so suggestions can
	// draw from titles and vocabulary, not just the curated terms.
	if catalogService != nil {
		if _, err := catalogService.Load(cmd.Context()); err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	bundle := suggestService.SuggestionsFor(args[0])

	if suggestJSON {
		out, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding suggestions: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	if len(bundle.Suggestions) > 0 {
		cmd.Println("Suggestions:")
		for _, s := range bundle.Suggestions {
			cmd.Printf("  %s\n", s)
		}
		return nil
	}

	if len(bundle.Popular) == 0 && len(bundle.Recent) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	if len(bundle.Popular) > 0 {
		cmd.Println("Popular searches:")
		for _, s := range bundle.Popular {
			cmd.Printf("  %s\n", s)
		}
	}
	if len(bundle.Recent) > 0 {
		cmd.Println("Recent searches:")
		for _, s := range bundle.Recent {
			cmd.Printf("  %s\n", s)
		}
	}
	return nil
}
