package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var popularLimit int

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show popular searches",
	Long: `Shows the most popular searches: queries searched repeatedly on
this machine first, backfilled with commonly requested services.`,
	Args: cobra.NoArgs,
	RunE: runPopular,
}

func init() {
	popularCmd.Flags().IntVarP(&popularLimit, "limit", "n", 8, "maximum number of entries")
	rootCmd.AddCommand(popularCmd)
}

func runPopular(cmd *cobra.Command, _ []string) error {
	if suggestService == nil {
		return errors.New("suggest service not configured")
	}

	popular := suggestService.PopularSearches(popularLimit)
	if len(popular) == 0 {
		cmd.Println("No popular searches.")
		return nil
	}

	cmd.Println("Popular searches:")
	for i, query := range popular {
		cmd.Printf("  [%d] %s\n", i+1, query)
	}
	return nil
}
