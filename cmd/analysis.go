package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
)

var analysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Show or generate the training analysis",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowAnalysis(deps)
	},
}

var analysisShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest analysis",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowAnalysis(deps)
	},
}

var analysisGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Ask the server for a new analysis",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.GenerateAnalysis(deps)
	},
}

func init() {
	analysisCmd.AddCommand(analysisShowCmd)
	analysisCmd.AddCommand(analysisGenerateCmd)
	rootCmd.AddCommand(analysisCmd)
}
