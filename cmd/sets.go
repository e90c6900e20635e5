package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/timeutil"
)

var logCmd = &cobra.Command{
	Use:   "log <exercise> <reps> <weight>",
	Short: "Log a set",
	Long: `Log a single set.

The exercise may be a unique part of a catalog name and may span several
words. Reps is free text whose leading number counts, e.g. "5 or below".
Weight is in the configured unit unless --unit is given.

Examples:
  gainsiq log squat 5 225
  gainsiq log bench press "8 or below" 100 --unit kg --set 2
  gainsiq log deadlift 3 405 --phase cutting --at "yesterday"
  gainsiq log squat 5 225 --at "2024-03-14 07:30"`,
	Args: cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		unit, _ := cmd.Flags().GetString("unit")
		set, _ := cmd.Flags().GetInt("set")
		phase, _ := cmd.Flags().GetString("phase")
		at, _ := cmd.Flags().GetString("at")

		n := len(args)
		handlers.LogSet(deps, handlers.LogSetArgs{
			Exercise:  joinArgs(args[:n-2]),
			Reps:      args[n-2],
			Weight:    args[n-1],
			Unit:      unit,
			SetNumber: set,
			Phase:     phase,
			At:        at,
		})
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Log many sets from a JSON file",
	Long: `Log many sets at once from a JSON array or a file with one JSON object
per line. Use - to read from stdin. Nothing is sent unless every row is valid.

Each row has the fields exercise, reps and weight, and optionally unit,
set, phase and at:
  {"exercise": "Squat", "reps": 5, "weight": 225, "at": "2024-03-14 07:30"}`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		unit, _ := cmd.Flags().GetString("unit")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		handlers.BatchLog(deps, args[0], unit, dryRun)
	},
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List sets for a day or date range",
	Long: `List logged sets, oldest first, with the index used by edit and delete.

Usage:
  gainsiq sets                                  Today's sets
  gainsiq sets --date yesterday                 The sets of one day
  gainsiq sets --from 2024-03-01 --to 2024-03-15  A date range
  gainsiq sets --last 7                         The last 7 days

Dates: YYYY-MM-DD, DD/MM/YYYY, today or yesterday.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		last, _ := cmd.Flags().GetInt("last")

		if from == "" && to == "" && last == 0 {
			handlers.ListDay(deps, date)
			return
		}

		r, err := timeutil.ParseRangeFlags(from, to, last, deps.Location(), deps.Clock())
		if err != nil {
			printUsageError(err, "Use either --from/--to or --last, e.g. --last 7")
			return
		}
		handlers.ListSets(deps, r)
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the sets of the last month",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListRecent(deps)
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recently logged set",
	Long: `Show the most recently logged set if it was logged within --within
(12 hours by default).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		within, _ := cmd.Flags().GetDuration("within")
		handlers.ShowLastSet(deps, within)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit a logged set",
	Long: `Edit the reps, weight or set number of a logged set.

The index refers to the set number shown by 'gainsiq sets' for the same day
(starting from 1). At least one of --reps, --weight or --set is required.

Examples:
  gainsiq edit 2 --reps 6
  gainsiq edit 1 --weight 230 --date yesterday`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")

		var edit handlers.EditSetArgs
		if cmd.Flags().Changed("reps") {
			reps, _ := cmd.Flags().GetString("reps")
			edit.Reps = &reps
		}
		if cmd.Flags().Changed("weight") {
			weight, _ := cmd.Flags().GetString("weight")
			edit.Weight = &weight
		}
		if cmd.Flags().Changed("set") {
			set, _ := cmd.Flags().GetInt("set")
			edit.SetNumber = &set
		}

		handlers.EditSet(deps, date, args[0], edit)
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <index>",
	Aliases: []string{"rm"},
	Short:   "Delete a logged set",
	Long: `Delete a logged set. The index refers to the set number shown by
'gainsiq sets' for the same day. Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteSet(deps, date, args[0], yes)
	},
}

var popCmd = &cobra.Command{
	Use:   "pop",
	Short: "Remove the most recently logged set",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.PopSet(deps, yes)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(popCmd)

	logCmd.Flags().Int("set", 0, "Set number (default: numbered by the server)")
	logCmd.Flags().String("phase", "", "Training phase: cutting or bulking (default: from config)")
	logCmd.Flags().String("at", "", "When the set was done, e.g. \"2024-03-14 07:30\" (default: now)")

	batchCmd.Flags().Bool("dry-run", false, "Parse the batch without sending it")

	setsCmd.Flags().String("date", "", "Day to list (default: today)")
	setsCmd.Flags().String("from", "", "Start date of the range")
	setsCmd.Flags().String("to", "", "End date of the range (default: today)")
	setsCmd.Flags().Int("last", 0, "List the last N days")

	lastCmd.Flags().Duration("within", service.DefaultLastSetWindow, "How far back to look")

	editCmd.Flags().String("reps", "", "New reps")
	editCmd.Flags().String("weight", "", "New weight")
	editCmd.Flags().Int("set", 0, "New set number")
	editCmd.Flags().String("date", "", "Day of the listing the index refers to (default: today)")

	deleteCmd.Flags().String("date", "", "Day of the listing the index refers to (default: today)")
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	popCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
