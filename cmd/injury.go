package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
)

var injuryCmd = &cobra.Command{
	Use:   "injury",
	Short: "Track injuries",
	Long: `Log injuries and mark them healed.

Usage:
  gainsiq injury                            List all injuries, newest first
  gainsiq injury active                     List active injuries
  gainsiq injury log shoulder --details "pain on overhead press"
  gainsiq injury heal <id>                  Mark an injury healed
  gainsiq injury reopen <id>                Mark an injury active again

The id is the number in brackets shown by the listing.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListInjuries(deps, false)
	},
}

var injuryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all injuries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListInjuries(deps, false)
	},
}

var injuryActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List active injuries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListInjuries(deps, true)
	},
}

var injuryLogCmd = &cobra.Command{
	Use:   "log <location>",
	Short: "Log a new injury",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		details, _ := cmd.Flags().GetString("details")
		handlers.LogInjury(deps, joinArgs(args), details)
	},
}

var injuryHealCmd = &cobra.Command{
	Use:   "heal <id>",
	Short: "Mark an injury healed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetInjuryActive(deps, args[0], false)
	},
}

var injuryReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Mark an injury active again",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetInjuryActive(deps, args[0], true)
	},
}

var bodypartsCmd = &cobra.Command{
	Use:   "bodyparts",
	Short: "List and manage injury locations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListBodyparts(deps)
	},
}

var bodypartsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List injury locations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListBodyparts(deps)
	},
}

var bodypartsAddCmd = &cobra.Command{
	Use:   "add <location>",
	Short: "Add an injury location",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddBodypart(deps, joinArgs(args))
	},
}

var bodypartsRmCmd = &cobra.Command{
	Use:     "rm <location>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove an injury location",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteBodypart(deps, joinArgs(args), yes)
	},
}

func init() {
	injuryCmd.AddCommand(injuryListCmd)
	injuryCmd.AddCommand(injuryActiveCmd)
	injuryCmd.AddCommand(injuryLogCmd)
	injuryCmd.AddCommand(injuryHealCmd)
	injuryCmd.AddCommand(injuryReopenCmd)
	rootCmd.AddCommand(injuryCmd)

	bodypartsCmd.AddCommand(bodypartsListCmd)
	bodypartsCmd.AddCommand(bodypartsAddCmd)
	bodypartsCmd.AddCommand(bodypartsRmCmd)
	rootCmd.AddCommand(bodypartsCmd)

	injuryLogCmd.Flags().String("details", "", "Free text details")
	bodypartsRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
