package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// LogSetArgs holds the arguments and flags of the log command
type LogSetArgs struct {
	Exercise  string
	Reps      string
	Weight    string
	Unit      string
	SetNumber int
	Phase     string
	At        string
}

// EditSetArgs holds the changes requested by the edit command. Nil means unchanged.
type EditSetArgs struct {
	Reps      *string
	Weight    *string
	SetNumber *int
}

// LogSet logs a single set
func LogSet(deps *cli.Deps, args LogSetArgs) {
	if !requireAPI(deps) {
		return
	}

	weight, err := workout.ParseWeight(args.Weight)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid weight '%s'\n", args.Weight)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a positive number, e.g. 225 or 102.5")
		deps.Exit(1)
		return
	}

	unit, ok := resolveUnit(deps, args.Unit)
	if !ok {
		return
	}

	var at time.Time
	if args.At != "" {
		at, err = timeutil.ParseDateTime(args.At, deps.Location(), deps.Clock())
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
	}

	exercise, ok := resolveExercise(deps, args.Exercise)
	if !ok {
		return
	}

	req, err := deps.Services.Set.Log(deps.Context(), service.LogInput{
		Exercise:  exercise,
		Reps:      args.Reps,
		Weight:    weight,
		Unit:      unit,
		SetNumber: args.SetNumber,
		Phase:     args.Phase,
		At:        at,
	})
	if err != nil {
		switch {
		case errors.Is(err, workout.ErrEmptyReps):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Reps cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a number or a note like '5 or below'")
			deps.Exit(1)
		case errors.Is(err, service.ErrTimestampInFuture):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot log a set in the future")
			deps.Exit(1)
		default:
			fail(deps, "Failed to log set", err)
		}
		return
	}

	logged := workout.WorkoutSet{Exercise: req.Exercise, Reps: req.Reps, Weight: req.Weight, SetNumber: req.Sets}
	if req.IsCutting != nil {
		logged.WeightModulation = workout.ModulationBulking
		if *req.IsCutting {
			logged.WeightModulation = workout.ModulationCutting
		}
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", cli.FormatSet(logged, unit))
}

// resolveUnit parses a --unit flag, falling back to the display unit
func resolveUnit(deps *cli.Deps, flag string) (units.Unit, bool) {
	if flag == "" {
		return deps.DisplayUnit(), true
	}
	unit, err := units.ParseUnit(flag)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return "", false
	}
	return unit, true
}

// resolveExercise maps user input to a catalog name. A unique partial
// match is accepted; unknown and ambiguous names are rejected.
func resolveExercise(deps *cli.Deps, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Exercise name cannot be empty")
		deps.Exit(1)
		return "", false
	}

	names, err := deps.Services.Exercise.List(deps.Context())
	if err != nil {
		fail(deps, "Failed to load exercises", err)
		return "", false
	}

	matches := service.Match(names, input)
	switch len(matches) {
	case 1:
		return matches[0], true
	case 0:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown exercise '%s'\n", input)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Add it first with 'gainsiq exercises add \"%s\"'\n", input)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: '%s' matches several exercises: %s\n", input, strings.Join(matches, ", "))
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the full exercise name")
	}
	deps.Exit(1)
	return "", false
}

// resolveDay parses a --date flag; empty means today
func resolveDay(deps *cli.Deps, dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return deps.Clock().In(deps.Location()), true
	}
	day, err := timeutil.ParseDate(dateStr, deps.Location(), deps.Clock())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return time.Time{}, false
	}
	return day, true
}

// ListSets prints the sets within r, oldest first and indexed
func ListSets(deps *cli.Deps, r timeutil.Range) {
	if !requireAPI(deps) {
		return
	}

	result, err := deps.Services.Set.List(deps.Context(), r)
	if err != nil {
		fail(deps, "Failed to load sets", err)
		return
	}

	period := cli.FormatRange(r.Start, r.End)
	if len(result.Sets) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No sets found for %s\n", period)
		return
	}

	unit := deps.DisplayUnit()
	loc := deps.Location()
	showDate := r.Start.IsZero() || r.Days() > 1
	indexWidth := len(strconv.Itoa(len(result.Sets)))

	_, _ = fmt.Fprintf(deps.Stdout, "Sets for %s:\n", period)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Separator)
	for _, is := range result.Sets {
		when := cli.FormatClock(is.Set.Timestamp, loc)
		if showDate {
			when = cli.FormatTimestamp(is.Set.Timestamp, loc)
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s  %s\n", indexWidth, is.Index, when, cli.FormatSet(is.Set, unit))
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.Separator)
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", cli.FormatSessionStats(result.Stats, unit))
}

// ListDay prints the sets of one day; dateStr empty means today
func ListDay(deps *cli.Deps, dateStr string) {
	day, ok := resolveDay(deps, dateStr)
	if !ok {
		return
	}
	ListSets(deps, timeutil.Day(day))
}

// ListRecent prints the sets of the last month, newest first
func ListRecent(deps *cli.Deps) {
	if !requireAPI(deps) {
		return
	}

	sets, err := deps.Services.Set.Recent(deps.Context())
	if err != nil {
		fail(deps, "Failed to load recent sets", err)
		return
	}

	if len(sets) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No sets logged in the last month")
		return
	}

	unit := deps.DisplayUnit()
	loc := deps.Location()
	currentDay := ""
	for _, s := range sets {
		day := cli.FormatDay(s.Time().In(loc))
		if day != currentDay {
			if currentDay != "" {
				_, _ = fmt.Fprintln(deps.Stdout)
			}
			_, _ = fmt.Fprintf(deps.Stdout, "%s\n", day)
			currentDay = day
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s  %s\n", cli.FormatClock(s.Timestamp, loc), cli.FormatSet(s, unit))
	}
}

// ShowLastSet prints the newest set logged within window
func ShowLastSet(deps *cli.Deps, window time.Duration) {
	if !requireAPI(deps) {
		return
	}

	set, ok, err := deps.Services.Set.LastSet(deps.Context(), window)
	if err != nil {
		fail(deps, "Failed to load sets", err)
		return
	}

	if !ok {
		_, _ = fmt.Fprintf(deps.Stdout, "No sets logged in the last %s\n", window)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Last set (%s, %s): %s\n",
		cli.FormatTimestamp(set.Timestamp, deps.Location()),
		cli.FormatAgo(set.Time(), deps.Clock()),
		cli.FormatSet(set, deps.DisplayUnit()))
}

// resolveSet finds the set at the 1-based index of a day's listing
func resolveSet(deps *cli.Deps, dateStr, indexStr string) (workout.WorkoutSet, bool) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", indexStr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List sets with 'gainsiq sets' to see available indices")
		deps.Exit(1)
		return workout.WorkoutSet{}, false
	}

	day, ok := resolveDay(deps, dateStr)
	if !ok {
		return workout.WorkoutSet{}, false
	}

	set, err := deps.Services.Set.Resolve(deps.Context(), day, index)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidIndex):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index %d. Index must be 1 or greater\n", index)
		case errors.Is(err, service.ErrNoSets):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No sets found for %s\n", cli.FormatDay(day))
		case errors.Is(err, service.ErrIndexOutOfRange):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List sets with 'gainsiq sets' to see available indices")
		default:
			fail(deps, "Failed to load sets", err)
			return workout.WorkoutSet{}, false
		}
		deps.Exit(1)
		return workout.WorkoutSet{}, false
	}

	return set, true
}

// EditSet edits the set at the given index of a day's listing
func EditSet(deps *cli.Deps, dateStr, indexStr string, args EditSetArgs) {
	if !requireAPI(deps) {
		return
	}

	if args.Reps == nil && args.Weight == nil && args.SetNumber == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--reps, --weight or --set) is required")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
		_, _ = fmt.Fprintln(deps.Stderr, "  gainsiq edit <index> --reps 8")
		_, _ = fmt.Fprintln(deps.Stderr, "  gainsiq edit <index> --weight 230 --set 3")
		deps.Exit(1)
		return
	}

	edit := service.EditInput{Reps: args.Reps, SetNumber: args.SetNumber, Unit: deps.DisplayUnit()}
	if args.Weight != nil {
		w, err := workout.ParseWeight(*args.Weight)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid weight '%s'\n", *args.Weight)
			deps.Exit(1)
			return
		}
		edit.Weight = &w
	}

	set, ok := resolveSet(deps, dateStr, indexStr)
	if !ok {
		return
	}

	if err := deps.Services.Set.Edit(deps.Context(), set.Key(), edit); err != nil {
		fail(deps, "Failed to edit set", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated set %s: %s\n", indexStr, cli.FormatSet(set, deps.DisplayUnit()))
	_, _ = fmt.Fprintln(deps.Stdout, describeEdit(args, deps.DisplayUnit()))
}

func describeEdit(args EditSetArgs, unit units.Unit) string {
	var changes []string
	if args.Reps != nil {
		changes = append(changes, "reps -> "+strings.TrimSpace(*args.Reps))
	}
	if args.Weight != nil {
		changes = append(changes, fmt.Sprintf("weight -> %s %s", strings.TrimSpace(*args.Weight), unit))
	}
	if args.SetNumber != nil {
		changes = append(changes, fmt.Sprintf("set -> %d", *args.SetNumber))
	}
	return "Changes: " + strings.Join(changes, ", ")
}

// DeleteSet deletes the set at the given index of a day's listing
func DeleteSet(deps *cli.Deps, dateStr, indexStr string, skipConfirm bool) {
	if !requireAPI(deps) {
		return
	}

	set, ok := resolveSet(deps, dateStr, indexStr)
	if !ok {
		return
	}

	unit := deps.DisplayUnit()
	_, _ = fmt.Fprintf(deps.Stdout, "Set to delete: %s  %s\n",
		cli.FormatTimestamp(set.Timestamp, deps.Location()), cli.FormatSet(set, unit))

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, "Delete this set?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
		return
	}

	if err := deps.Services.Set.Delete(deps.Context(), set.Key()); err != nil {
		fail(deps, "Failed to delete set", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", cli.FormatSet(set, unit))
}

// PopSet removes the most recently logged set
func PopSet(deps *cli.Deps, skipConfirm bool) {
	if !requireAPI(deps) {
		return
	}

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, "Remove the most recently logged set?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Pop cancelled")
		return
	}

	msg, err := deps.Services.Set.Pop(deps.Context())
	if err != nil {
		fail(deps, "Failed to remove the last set", err)
		return
	}

	if msg == "" {
		msg = "Removed the most recently logged set"
	}
	_, _ = fmt.Fprintln(deps.Stdout, msg)
}
