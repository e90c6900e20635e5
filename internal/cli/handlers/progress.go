package handlers

import (
	"errors"
	"fmt"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/units"
)

const barWidth = 30

// ShowProgress charts the daily averages or estimated 1RM of an exercise
func ShowProgress(deps *cli.Deps, exercise string, r timeutil.Range, mode stats.ChartMode) {
	if !requireAPI(deps) {
		return
	}

	name, ok := resolveExercise(deps, exercise)
	if !ok {
		return
	}

	result, err := deps.Services.Progress.ForExercise(deps.Context(), name, r)
	if err != nil {
		if errors.Is(err, service.ErrEmptyExercise) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Exercise name cannot be empty")
			deps.Exit(1)
			return
		}
		fail(deps, fmt.Sprintf("Failed to load progress for '%s'", name), err)
		return
	}

	period := cli.FormatRange(result.Range.Start, result.Range.End)
	if len(result.Buckets) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No sets of %s found for %s\n", result.Exercise, period)
		return
	}

	unit := deps.DisplayUnit()
	var maxValue float64
	for _, b := range result.Buckets {
		if v := b.Value(mode); v > maxValue {
			maxValue = v
		}
	}

	title := "average weight"
	if mode == stats.ChartOneRepMax {
		title = "estimated 1RM"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%s, %s, %s (%s):\n", result.Exercise, title, period, cli.Plural(result.SetCount, "set"))
	_, _ = fmt.Fprintln(deps.Stdout, cli.Separator)

	// Oldest day at the top
	for i := len(result.Buckets) - 1; i >= 0; i-- {
		b := result.Buckets[i]
		v := b.Value(mode)
		line := fmt.Sprintf("%s  %8s  %-*s", b.Date.Format("2006-01-02"), units.FormatValue(v, unit), barWidth, stats.Bar(v, maxValue, barWidth))
		if mode == stats.ChartAverage {
			line += fmt.Sprintf("  %.1f reps", b.AvgReps)
		}
		if b.Cutting {
			line += "  [cut]"
		}
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.Separator)
	_, _ = fmt.Fprintf(deps.Stdout, "Values in %s\n", unit)
}
