package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track bodyweight",
	Long: `Log and review bodyweight.

Usage:
  gainsiq weight                  Show the trend (same as 'weight trend')
  gainsiq weight log 181.4        Log a bodyweight sample
  gainsiq weight list --limit 10  List samples, newest first
  gainsiq weight rm               Delete the most recent sample
  gainsiq weight trend            Show summary, weekly change and 30 day projection`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowWeightTrend(deps)
	},
}

var weightLogCmd = &cobra.Command{
	Use:   "log <value>",
	Short: "Log a bodyweight sample",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		unit, _ := cmd.Flags().GetString("unit")
		handlers.LogWeight(deps, args[0], unit)
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bodyweight samples, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		handlers.ListWeights(deps, limit)
	},
}

var weightRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Delete the most recent bodyweight sample",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteRecentWeight(deps, yes)
	},
}

var weightTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the bodyweight trend and projection",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowWeightTrend(deps)
	},
}

func init() {
	weightCmd.AddCommand(weightLogCmd)
	weightCmd.AddCommand(weightListCmd)
	weightCmd.AddCommand(weightRmCmd)
	weightCmd.AddCommand(weightTrendCmd)
	rootCmd.AddCommand(weightCmd)

	weightListCmd.Flags().Int("limit", 0, "Show at most N samples (default: all)")
	weightRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
