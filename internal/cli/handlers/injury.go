package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
)

// ListInjuries prints the injury log, newest first
func ListInjuries(deps *cli.Deps, activeOnly bool) {
	if !requireAPI(deps) {
		return
	}

	injuries, err := deps.Services.Injury.List(deps.Context(), activeOnly)
	if err != nil {
		fail(deps, "Failed to load injuries", err)
		return
	}

	if len(injuries) == 0 {
		if activeOnly {
			_, _ = fmt.Fprintln(deps.Stdout, "No active injuries")
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, "No injuries logged")
		}
		return
	}

	loc := deps.Location()
	for _, i := range injuries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%d] %s\n", i.Timestamp, cli.FormatInjury(i, loc))
	}
}

// LogInjury records a new active injury
func LogInjury(deps *cli.Deps, location, details string) {
	if !requireAPI(deps) {
		return
	}

	injury, err := deps.Services.Injury.Log(deps.Context(), location, details)
	if err != nil {
		if errors.Is(err, service.ErrEmptyLocation) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Injury location cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List known locations with 'gainsiq bodyparts'")
			deps.Exit(1)
			return
		}
		fail(deps, "Failed to log injury", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged injury: %s\n", cli.FormatInjury(injury, deps.Location()))
}

// SetInjuryActive marks the injury logged at timestamp as active or healed
func SetInjuryActive(deps *cli.Deps, timestampStr string, active bool) {
	if !requireAPI(deps) {
		return
	}

	ts, err := strconv.ParseInt(timestampStr, 10, 64)
	if err != nil || ts <= 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid injury id '%s'\n", timestampStr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: The id is the number in brackets shown by 'gainsiq injury'")
		deps.Exit(1)
		return
	}

	if err := deps.Services.Injury.SetActive(deps.Context(), ts, active); err != nil {
		fail(deps, "Failed to update injury", err)
		return
	}

	status := "healed"
	if active {
		status = "active"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Marked injury %d as %s\n", ts, status)
}
