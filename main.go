package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gainsiq/gainsiq/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run executes the CLI and returns the process exit code.
// Ctrl-C cancels in-flight API requests.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
