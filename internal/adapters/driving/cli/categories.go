package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List service categories",
	Long: `Lists the categories of the loaded catalog. Category ids can be
passed to 'search --category' to narrow results.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	categories, err := catalogService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	if len(categories) == 0 {
		cmd.Println("No categories.")
		return nil
	}

	cmd.Println("Categories:")
	for _, c := range categories {
		if c.ID != "" {
			cmd.Printf("  %-16s %s\n", c.ID, c.Name)
		} else {
			cmd.Printf("  %s\n", c.Name)
		}
	}
	return nil
}
