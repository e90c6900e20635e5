package handlers

import (
	"errors"
	"fmt"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

const sparklineWidth = 40

// LogWeight records a bodyweight sample
func LogWeight(deps *cli.Deps, valueStr, unitFlag string) {
	if !requireAPI(deps) {
		return
	}

	value, err := workout.ParseWeight(valueStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid weight '%s'\n", valueStr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a positive number, e.g. 181.4")
		deps.Exit(1)
		return
	}

	unit, ok := resolveUnit(deps, unitFlag)
	if !ok {
		return
	}

	pounds, err := deps.Services.Weight.Log(deps.Context(), value, unit)
	if err != nil {
		if errors.Is(err, workout.ErrInvalidWeight) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
		fail(deps, "Failed to log weight", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged weight: %s\n", units.Format(pounds, unit))
}

// ListWeights prints the bodyweight samples, newest first, limited to limit entries (0 means all)
func ListWeights(deps *cli.Deps, limit int) {
	if !requireAPI(deps) {
		return
	}

	entries, err := deps.Services.Weight.List(deps.Context())
	if err != nil {
		fail(deps, "Failed to load weights", err)
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No weight logged yet")
		return
	}

	unit := deps.DisplayUnit()
	loc := deps.Location()
	shown := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && shown == limit {
			break
		}
		e := entries[i]
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", cli.FormatTimestamp(e.Timestamp, loc), units.Format(e.Weight, unit))
		shown++
	}
}

// DeleteRecentWeight removes the most recent bodyweight sample
func DeleteRecentWeight(deps *cli.Deps, skipConfirm bool) {
	if !requireAPI(deps) {
		return
	}

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, "Delete the most recent weight entry?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
		return
	}

	if err := deps.Services.Weight.DeleteRecent(deps.Context()); err != nil {
		fail(deps, "Failed to delete weight", err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Deleted the most recent weight entry")
}

// ShowWeightTrend prints the bodyweight summary, a sparkline and the projection
func ShowWeightTrend(deps *cli.Deps) {
	if !requireAPI(deps) {
		return
	}

	overview, err := deps.Services.Weight.Overview(deps.Context())
	if err != nil {
		fail(deps, "Failed to load weights", err)
		return
	}

	if len(overview.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No weight logged yet")
		return
	}

	unit := deps.DisplayUnit()
	loc := deps.Location()
	s := overview.Summary

	values := make([]float64, len(overview.Entries))
	for i, e := range overview.Entries {
		values[i] = e.Weight
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries: %d\n", s.Count)
	_, _ = fmt.Fprintf(deps.Stdout, "Latest:  %s (%s)\n", units.Format(s.Latest.Weight, unit), cli.FormatTimestamp(s.Latest.Timestamp, loc))
	_, _ = fmt.Fprintf(deps.Stdout, "Average: %s\n", units.Format(s.Average, unit))
	_, _ = fmt.Fprintf(deps.Stdout, "History: %s\n", stats.Sparkline(values, sparklineWidth))

	if !s.HasTrend {
		_, _ = fmt.Fprintln(deps.Stdout, "Trend:   not available")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Trend:   %s\n", cli.FormatWeeklyChange(s.WeeklyChange, unit))
	if len(overview.Projection) == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "Projection (next %d days):\n", stats.ProjectionDays)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Separator)
	for _, p := range overview.Projection {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", p.Time.In(loc).Format("2006-01-02"), units.Format(p.Weight, unit))
	}
}
