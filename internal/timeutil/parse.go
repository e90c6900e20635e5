package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateHint = "use YYYY-MM-DD, DD/MM/YYYY, today or yesterday"

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	dayMonthRe  = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
)

// ParseDate parses a calendar date in loc and returns its midnight.
// Accepts YYYY-MM-DD, DD/MM/YYYY, "today" and "yesterday".
func ParseDate(input string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "":
		return time.Time{}, fmt.Errorf("date cannot be empty (%s)", dateHint)
	case "today":
		return StartOfDay(now.In(loc)), nil
	case "yesterday":
		return StartOfDay(now.In(loc).AddDate(0, 0, -1)), nil
	}

	for _, layout := range []string{"2006-01-02", "02/01/2006", "2/1/2006"} {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}

	switch {
	case yearMonthRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing day (%s)", input, dateHint)
	case dayMonthRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing year (%s)", input, dateHint)
	default:
		return time.Time{}, fmt.Errorf("invalid date '%s' (%s)", input, dateHint)
	}
}

// ParseDateTime parses a point in time for backdating a logged set.
// A bare date keeps the clock time of now.
func ParseDateTime(input string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	input = strings.TrimSpace(input)

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}

	day, err := ParseDate(input, loc, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time '%s' (use YYYY-MM-DD HH:MM or a date)", input)
	}
	clock := now.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, loc), nil
}

// ParseRangeFlags resolves the --from/--to/--last flags.
// --last N covers N days ending today and excludes --from/--to.
// Without --to the range ends today; without --from it is unbounded.
func ParseRangeFlags(fromStr, toStr string, lastDays int, loc *time.Location, now time.Time) (Range, error) {
	if loc == nil {
		loc = time.Local
	}
	if lastDays < 0 {
		return Range{}, fmt.Errorf("--last must be positive, got %d", lastDays)
	}
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return Range{}, fmt.Errorf("cannot use --last with --from or --to")
	}
	if lastDays > 0 {
		return LastDays(now.In(loc), lastDays), nil
	}

	var r Range
	if fromStr != "" {
		start, err := ParseDate(fromStr, loc, now)
		if err != nil {
			return Range{}, fmt.Errorf("invalid --from date: %w", err)
		}
		r.Start = start
	}

	if toStr != "" {
		to, err := ParseDate(toStr, loc, now)
		if err != nil {
			return Range{}, fmt.Errorf("invalid --to date: %w", err)
		}
		r.End = EndOfDay(to)
	} else {
		r.End = EndOfDay(now.In(loc))
	}

	if !r.Start.IsZero() && r.Start.After(r.End) {
		return Range{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}

	return r, nil
}
