// Package cli provides the CLI presentation layer for gainsiq.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// Separator is the rule printed around listings
var Separator = strings.Repeat("-", 60)

// FormatSet formats a set as "Squat  5 x 225.0 lbs (set 2) [cut]"
func FormatSet(s workout.WorkoutSet, unit units.Unit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s x %s", s.Exercise, s.Reps, units.Format(s.Weight, unit))
	if s.SetNumber > 0 {
		fmt.Fprintf(&b, " (set %d)", s.SetNumber)
	}
	if tag := FormatPhase(s.WeightModulation); tag != "" {
		fmt.Fprintf(&b, " [%s]", tag)
	}
	return b.String()
}

// FormatPhase returns a short tag for a weight modulation
func FormatPhase(modulation string) string {
	switch modulation {
	case workout.ModulationCutting:
		return "cut"
	case workout.ModulationBulking:
		return "bulk"
	default:
		return ""
	}
}

// FormatDay formats a calendar day, e.g. "Fri 2024-03-15"
func FormatDay(t time.Time) string {
	return t.Format("Mon 2006-01-02")
}

// FormatClock formats a unix timestamp as local wall clock time
func FormatClock(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format("15:04")
}

// FormatTimestamp formats a unix timestamp as date and time
func FormatTimestamp(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format("2006-01-02 15:04")
}

// FormatRange formats a date range for listing headers
func FormatRange(start, end time.Time) string {
	if start.IsZero() {
		return "until " + end.Format("2006-01-02")
	}
	if start.Format("2006-01-02") == end.Format("2006-01-02") {
		return FormatDay(start)
	}
	return fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// FormatVolume formats a volume (reps x pounds) in unit
func FormatVolume(volumeLbs float64, unit units.Unit) string {
	return fmt.Sprintf("%.0f %s", units.ToDisplay(volumeLbs, unit), unit)
}

// FormatSessionStats formats the summary line under a set listing
func FormatSessionStats(s stats.SessionStats, unit units.Unit) string {
	return fmt.Sprintf("%s, %s, volume %s",
		Plural(s.Count, "set"), Plural(s.Exercises, "exercise"), FormatVolume(s.Volume, unit))
}

// FormatWeeklyChange formats a pounds-per-week rate with its sign
func FormatWeeklyChange(lbsPerWeek float64, unit units.Unit) string {
	return fmt.Sprintf("%+.2f %s/week", units.ToDisplay(lbsPerWeek, unit), unit)
}

// FormatInjury formats an injury log line
func FormatInjury(i workout.Injury, loc *time.Location) string {
	status := "healed"
	if i.Active {
		status = "active"
	}
	line := fmt.Sprintf("%s  %-12s %s", FormatTimestamp(i.Timestamp, loc), i.Location, status)
	if i.Details != "" {
		line += "  " + i.Details
	}
	return line
}

// FormatAgo formats the time elapsed since t, e.g. "2h 5m ago"
func FormatAgo(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dh %dm ago", hours, mins)
}

// Plural formats a count with a noun, e.g. "1 set", "3 sets"
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
