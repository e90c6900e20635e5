package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/timeutil"
)

var progressCmd = &cobra.Command{
	Use:   "progress <exercise>",
	Short: "Chart the progress of an exercise",
	Long: `Chart an exercise day by day: the average weight and reps of each day,
or the estimated one-rep-max (Brzycki formula) with --chart 1rm.

Without --from the chart covers the last 6 months.

Examples:
  gainsiq progress squat
  gainsiq progress bench press --chart 1rm --from 2024-01-01`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		chart, _ := cmd.Flags().GetString("chart")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		mode, err := parseChartMode(chart)
		if err != nil {
			printUsageError(err, "Use --chart avg or --chart 1rm")
			return
		}

		var r timeutil.Range
		if from != "" || to != "" {
			r, err = timeutil.ParseRangeFlags(from, to, 0, deps.Location(), deps.Clock())
			if err != nil {
				printUsageError(err, "Dates: YYYY-MM-DD, DD/MM/YYYY, today or yesterday")
				return
			}
		}

		handlers.ShowProgress(deps, joinArgs(args), r, mode)
	},
}

func parseChartMode(s string) (stats.ChartMode, error) {
	switch s {
	case "", "avg", "average":
		return stats.ChartAverage, nil
	case "1rm", "orm", "max":
		return stats.ChartOneRepMax, nil
	default:
		return stats.ChartAverage, fmt.Errorf("unknown chart '%s'", s)
	}
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().String("chart", "avg", "Chart to show: avg or 1rm")
	progressCmd.Flags().String("from", "", "Start date (default: 6 months ago)")
	progressCmd.Flags().String("to", "", "End date (default: today)")
}
