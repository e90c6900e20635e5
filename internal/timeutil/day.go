// Package timeutil turns user date input into the unix ranges the API queries by.
package timeutil

import "time"

// StartOfDay returns midnight of the given day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Range is an inclusive time window. A zero Start means unbounded.
type Range struct {
	Start time.Time
	End   time.Time
}

// Day returns the range covering the calendar day of t
func Day(t time.Time) Range {
	return Range{Start: StartOfDay(t), End: EndOfDay(t)}
}

// LastDays returns the n calendar days ending with the day of now
func LastDays(now time.Time, n int) Range {
	if n < 1 {
		n = 1
	}
	return Range{Start: StartOfDay(now.AddDate(0, 0, -(n - 1))), End: EndOfDay(now)}
}

// LastMonths returns the window from n months before now until the end of today
func LastMonths(now time.Time, n int) Range {
	return Range{Start: StartOfDay(now.AddDate(0, -n, 0)), End: EndOfDay(now)}
}

// Unix returns the bounds as unix seconds. An unbounded start is 0.
func (r Range) Unix() (start, end int64) {
	if !r.Start.IsZero() {
		start = r.Start.Unix()
	}
	return start, r.End.Unix()
}

// Contains reports whether t lies within the range, bounds included
func (r Range) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	return !t.After(r.End)
}

// Days returns the number of calendar days the range touches
func (r Range) Days() int {
	if r.Start.IsZero() {
		return 0
	}
	start := StartOfDay(r.Start)
	end := StartOfDay(r.End.In(r.Start.Location()))
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
