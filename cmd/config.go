package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
	"github.com/gainsiq/gainsiq/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for gainsiq.

Shows the configuration file location, whether it exists, and all current
settings. The API key is masked. $GAINSIQ_API_URL and $GAINSIQ_API_KEY
override the file.

Usage:
  gainsiq config                       Show all current settings
  gainsiq config init                  Create a sample config file
  gainsiq config set-key               Store the API key (read without echo)
  gainsiq config set unit kg           Change a single setting

Configuration file location:
  ~/.config/gainsiq/config.toml        Linux
  %APPDATA%\gainsiq\config.toml        Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all current settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps)
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the API key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetAPIKey(deps)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting of the config file.

Keys: ` + strings.Join(service.ConfigKeys, ", "),
	Args:      cobra.ExactArgs(2),
	ValidArgs: service.ConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetConfig(deps, args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
