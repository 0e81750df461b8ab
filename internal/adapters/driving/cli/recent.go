package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var recentClear bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show or clear recent searches",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "clear the recent search list")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	if suggestService == nil {
		return errors.New("suggest service not configured")
	}

	if recentClear {
		suggestService.ClearRecentSearches()
		cmd.Println("Recent searches cleared.")
		return nil
	}

	recent := suggestService.RecentSearches()
	if len(recent) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	cmd.Println("Recent searches:")
	for i, query := range recent {
		cmd.Printf("  [%d] %s\n", i+1, query)
	}
	return nil
}
