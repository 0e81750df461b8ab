package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Serbisyo.

Search as you type with typo tolerance, browse suggestions, and view
service details with fees, offices and processing times.

Controls:
  ↑/↓    - Navigate results
  Enter  - Show service details
  Esc    - Back / Clear query
  q      - Quit (Ctrl+C while typing)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps the terminal usable and shows a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if searchService == nil || suggestService == nil {
		return errors.New("services not configured")
	}

	app := tui.NewApp(tui.Ports{
		Search:  searchService,
		Suggest: suggestService,
		Catalog: catalogService,
	}, appSettings)

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
