package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
)

// SetListOptions configures how sets are rendered
type SetListOptions struct {
	ShowDate bool           // Show date in addition to time
	Width    int            // Available width for rendering
	Cursor   int            // Currently selected set index (-1 for none)
	Unit     units.Unit     // Display unit for weights
	Location *time.Location // Timezone for timestamps
}

// RenderSetList renders a list of sets with aligned columns
func RenderSetList(sets []service.IndexedSet, styles ui.Styles, opts SetListOptions) string {
	if len(sets) == 0 {
		return ""
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	type row struct {
		index    string
		time     string
		exercise string
		load     string
		extra    string
	}
	rows := make([]row, len(sets))

	var indexWidth, timeWidth, exerciseWidth, loadWidth int
	for i, is := range sets {
		s := is.Set

		r := row{
			index:    fmt.Sprintf("[%d]", is.Index),
			exercise: s.Exercise,
			load:     fmt.Sprintf("%s x %s", s.Reps, units.Format(s.Weight, opts.Unit)),
		}
		if opts.ShowDate {
			r.time = time.Unix(s.Timestamp, 0).In(loc).Format("Jan 02 15:04")
		} else {
			r.time = cli.FormatClock(s.Timestamp, loc)
		}
		if s.SetNumber > 0 {
			r.extra = fmt.Sprintf("set %d", s.SetNumber)
		}
		if tag := cli.FormatPhase(s.WeightModulation); tag != "" {
			r.extra = strings.TrimSpace(r.extra + " [" + tag + "]")
		}

		indexWidth = max(indexWidth, len(r.index))
		timeWidth = max(timeWidth, len(r.time))
		exerciseWidth = max(exerciseWidth, len(r.exercise))
		loadWidth = max(loadWidth, len(r.load))
		rows[i] = r
	}

	// Leave room for the load and extra columns
	allowed := max(opts.Width-indexWidth-timeWidth-loadWidth-20, 12)
	exerciseWidth = min(exerciseWidth, allowed)

	var b strings.Builder
	for i, r := range rows {
		style := styles.SetNormal
		if i == opts.Cursor {
			style = styles.SetSelected
		}

		exercise := r.exercise
		if len(exercise) > exerciseWidth {
			exercise = exercise[:exerciseWidth-1] + "…"
		}

		line := fmt.Sprintf("%s %s %s %s",
			styles.SetIndex.Render(fmt.Sprintf("%-*s", indexWidth, r.index)),
			styles.SetTime.Render(fmt.Sprintf("%-*s", timeWidth, r.time)),
			styles.SetExercise.Render(fmt.Sprintf("%-*s", exerciseWidth, exercise)),
			styles.SetWeight.Render(fmt.Sprintf("%*s", loadWidth, r.load)))
		if r.extra != "" {
			line += "  " + styles.SetPhase.Render(r.extra)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatLine renders a label and value pair on one line
func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

// renderError renders an error inline in a view
func renderError(styles ui.Styles, err error) string {
	return styles.Error.Render(fmt.Sprintf("Error: %v", err))
}

// rule renders a horizontal separator no wider than width
func rule(width int) string {
	return strings.Repeat("─", max(0, min(50, width)))
}

// picker is a scrolling single-selection list
type picker struct {
	cursor  int
	offset  int
	visible int
}

// move shifts the cursor by delta within n items
func (p *picker) move(delta, n int) {
	p.jump(p.cursor+delta, n)
}

// jump places the cursor on index i, clamped to n items
func (p *picker) jump(i, n int) {
	p.cursor = max(0, min(n-1, i))
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+p.visible {
		p.offset = p.cursor - p.visible + 1
	}
}

// render draws the visible window of items. The item equal to current is tagged.
func (p picker) render(items []string, styles ui.Styles, current string) string {
	var b strings.Builder
	end := min(p.offset+p.visible, len(items))
	if p.offset > 0 {
		b.WriteString(styles.Hint.Render("  ↑ more above"))
		b.WriteString("\n")
	}
	for i := p.offset; i < end; i++ {
		if i == p.cursor {
			b.WriteString(styles.SetSelected.Render("▸ " + items[i]))
		} else {
			b.WriteString("  " + items[i])
		}
		if current != "" && items[i] == current {
			b.WriteString(styles.Success.Render(" (current)"))
		}
		b.WriteString("\n")
	}
	if end < len(items) {
		b.WriteString(styles.Hint.Render("  ↓ more below"))
		b.WriteString("\n")
	}
	return b.String()
}
