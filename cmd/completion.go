package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/service"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for gainsiq. Exercise names and
body parts are completed from the server when it is configured.

Bash:
  source <(gainsiq completion bash)
  gainsiq completion bash > ~/.local/share/bash-completion/completions/gainsiq

Zsh:
  gainsiq completion zsh > "${fpath[1]}/_gainsiq"

Fish:
  gainsiq completion fish > ~/.config/fish/completions/gainsiq.fish

PowerShell:
  gainsiq completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	logCmd.ValidArgsFunction = completeExercises
	progressCmd.ValidArgsFunction = completeExercises
	exercisesRmCmd.ValidArgsFunction = completeExercises
	injuryLogCmd.ValidArgsFunction = completeBodyparts
	bodypartsRmCmd.ValidArgsFunction = completeBodyparts
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(deps.Stdout, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
	}
}

// completeExercises completes the first argument with catalog names
func completeExercises(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	services := completionServices()
	if len(args) > 0 || services == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := services.Exercise.List(deps.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeBodyparts completes the first argument with known injury locations
func completeBodyparts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	services := completionServices()
	if len(args) > 0 || services == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	parts, err := services.Bodypart.List(deps.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterPrefix(parts, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(v), prefix) {
			out = append(out, v)
		}
	}
	return out
}

// completionServices returns the services for dynamic completion, which runs
// without the persistent pre-run hook. Nil when the API is not configured.
func completionServices() *service.Services {
	if deps.Services == nil {
		services, err := newServices()
		if err != nil {
			return nil
		}
		deps.Services = services
	}
	if deps.Services.Config.Get().Ready() != nil {
		return nil
	}
	return deps.Services
}
