package cmd

import (
	"fmt"
	"strings"
)

// joinArgs joins unquoted multi-word names such as: exercises add Front Squat
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// printUsageError reports invalid flags with a hint
func printUsageError(err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	deps.Exit(1)
}
