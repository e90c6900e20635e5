package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for gainsiq.

Views available:
  - Log: Pick an exercise and log sets
  - History: Browse the sets of a day, edit and delete them
  - Progress: Chart an exercise by day (average or estimated 1RM)
  - Weight: Log bodyweight and view the trend
  - Config: View the configuration and pick a theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-5: Jump to specific view
  - j/k or arrows: Navigate within lists
  - u: Toggle lbs/kg
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application with the response cache enabled
func runTUI() {
	services, err := service.NewServices(service.Options{EnableCache: true})
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error initializing services: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := tui.Run(services, deps.Unit); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}
