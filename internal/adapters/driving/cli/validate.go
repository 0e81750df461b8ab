package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog document",
	Long: `Fetches the raw catalog document and reports records with missing
required fields, malformed urls or duplicate ids. Intended for catalog
maintainers.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	issues, err := catalogService.Validate(cmd.Context())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if len(issues) == 0 {
		cmd.Println("Catalog is valid.")
		return nil
	}

	cmd.Printf("Found %d issue(s):\n", len(issues))
	for _, issue := range issues {
		id := issue.RecordID
		if id == "" {
			id = "(no id)"
		}
		cmd.Printf("  %s: %s: %s\n", id, issue.Field, issue.Message)
	}
	return fmt.Errorf("catalog has %d issue(s)", len(issues))
}
