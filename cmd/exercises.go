package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "List and manage the exercise catalog",
	Long: `List and manage the exercises sets can be logged against.

Usage:
  gainsiq exercises                  List all exercises
  gainsiq exercises add "Front Squat"  Add an exercise
  gainsiq exercises rm "Front Squat"   Remove an exercise (with confirmation)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListExercises(deps)
	},
}

var exercisesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all exercises",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListExercises(deps)
	},
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddExercise(deps, joinArgs(args))
	},
}

var exercisesRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove an exercise",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteExercise(deps, joinArgs(args), yes)
	},
}

func init() {
	exercisesCmd.AddCommand(exercisesListCmd)
	exercisesCmd.AddCommand(exercisesAddCmd)
	exercisesCmd.AddCommand(exercisesRmCmd)
	rootCmd.AddCommand(exercisesCmd)

	exercisesRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
