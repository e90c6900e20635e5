package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gainsiq/gainsiq/internal/cli/handlers"
	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/logging"
	"github.com/gainsiq/gainsiq/internal/units"
)

// errSetup is returned by prepare after the failure has been reported
var errSetup = errors.New("setup failed")

// logCloser releases the log file opened by prepare
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "gainsiq",
	Short: "A command line client for the GainsIQ workout tracker",
	Long: `gainsiq logs workout sets and bodyweight to a GainsIQ server and
shows your progress.

Usage:
  gainsiq                                      List today's sets
  gainsiq log <exercise> <reps> <weight>       Log a set (e.g., gainsiq log squat 5 225)
  gainsiq sets --date yesterday                List the sets of a day
  gainsiq edit <index> --weight 230            Edit a set of today's listing
  gainsiq delete <index>                       Delete a set (with confirmation)
  gainsiq weight log 181.4                     Log your bodyweight
  gainsiq weight trend                         Show the bodyweight trend
  gainsiq progress squat --chart 1rm           Chart the estimated 1RM of an exercise
  gainsiq tui                                  Launch the interactive terminal UI

Weights are entered and shown in the configured unit (lbs or kg).
Use --unit to override it for a single command.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	PersistentPostRun: finish,
	DisableAutoGenTag: true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListDay(deps, "")
	},
}

func init() {
	rootCmd.PersistentFlags().String("unit", "", "Weight unit for this command (lbs or kg)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
}

// prepare loads the configuration, sets up logging and applies global flags
func prepare(cmd *cobra.Command, args []string) error {
	if ctx := cmd.Context(); ctx != nil {
		deps.Ctx = ctx
	}

	if deps.Services == nil {
		services, err := newServices()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix or remove the config file shown by 'gainsiq config'")
			deps.Exit(1)
			return errSetup
		}
		deps.Services = services
	}

	cfg := deps.Services.Config.Get()
	verbose, _ := cmd.Flags().GetBool("verbose")

	logFile := cfg.LogFile
	if logFile == "" {
		if path, err := config.GetLogPath(); err == nil {
			logFile = path
		}
	}
	logCloser = logging.Setup(logging.SetupParams{
		LogFileName: logFile,
		Verbose:     verbose,
		LogLevel:    cfg.LogLevel,
		Stderr:      deps.Stderr,
	})
	log.WithFields(log.Fields{"command": cmd.CommandPath(), "api_url": cfg.APIURL}).Debug("starting")

	unitFlag, _ := cmd.Flags().GetString("unit")
	if unitFlag != "" {
		unit, err := units.ParseUnit(unitFlag)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return errSetup
		}
		deps.Unit = unit
	}

	if deps.ReadSecret == nil {
		deps.ReadSecret = readSecret
	}

	return nil
}

func finish(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"gainsiq version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx bounding every API call
func ExecuteContext(ctx context.Context) error {
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errSetup) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	}
	return err
}
