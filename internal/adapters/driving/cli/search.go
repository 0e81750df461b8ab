package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

var (
	searchLimit    int
	searchCategory string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the service catalog",
	Long: `Searches the municipal service catalog with typo-tolerant matching.
Results are ranked by relevance across title, keywords, category, office
and description. Misspelled queries like "brith certficate" still find
the right service.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "filter by category id or name")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Category: searchCategory,
		Limit:    searchLimit,
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if suggestService != nil {
		suggestService.RecordSearch(query, len(results))
		suggestService.AddRecentSearch(query)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ScoredResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.ScoredResult) error {
	if len(results) == 0 {
		cmd.Println("No services found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s (%d)\n", i+1, r.Title, r.Score)
		cmd.Printf("      Category: %s\n", r.Category)
		if r.Office != "" {
			cmd.Printf("      Office: %s\n", r.Office)
		}

		var facts []string
		if r.Fee != "" {
			facts = append(facts, "Fee: "+r.Fee)
		}
		if r.ProcessingTime != "" {
			facts = append(facts, "Processing: "+r.ProcessingTime)
		}
		if len(facts) > 0 {
			cmd.Printf("      %s\n", strings.Join(facts, " | "))
		}
		cmd.Println()
	}

	return nil
}
