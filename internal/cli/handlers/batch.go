package handlers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/units"
)

// BatchRow is one set of a batch file
type BatchRow struct {
	Exercise string          `json:"exercise"`
	Reps     json.RawMessage `json:"reps"`
	Weight   json.RawMessage `json:"weight"`
	Unit     string          `json:"unit,omitempty"`
	Set      int             `json:"set,omitempty"`
	Phase    string          `json:"phase,omitempty"`
	At       string          `json:"at,omitempty"`
}

// ParseBatch reads batch rows from r. The input is either a JSON array of
// rows or one JSON object per line.
func ParseBatch(r io.Reader) ([]BatchRow, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var rows []BatchRow
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("invalid batch array: %w", err)
		}
		return rows, nil
	}

	var rows []BatchRow
	for {
		var row BatchRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid batch row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		return b, br.UnreadByte()
	}
}

// rawText returns a JSON string or number as text
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// toInputs converts rows to service inputs, collecting every row error
func toInputs(deps *cli.Deps, rows []BatchRow, defaultUnit units.Unit) ([]service.LogInput, error) {
	inputs := make([]service.LogInput, 0, len(rows))
	var errs error
	for i, row := range rows {
		in, err := rowInput(deps, row, defaultUnit)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, errs
}

func rowInput(deps *cli.Deps, row BatchRow, defaultUnit units.Unit) (service.LogInput, error) {
	in := service.LogInput{
		Exercise:  row.Exercise,
		Reps:      rawText(row.Reps),
		Unit:      defaultUnit,
		SetNumber: row.Set,
		Phase:     row.Phase,
	}

	weight := rawText(row.Weight)
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return in, fmt.Errorf("invalid weight '%s'", weight)
	}
	in.Weight = w

	if row.Unit != "" {
		in.Unit, err = units.ParseUnit(row.Unit)
		if err != nil {
			return in, err
		}
	}

	if row.At != "" {
		in.At, err = timeutil.ParseDateTime(row.At, deps.Location(), deps.Clock())
		if err != nil {
			return in, err
		}
	}
	return in, nil
}

// BatchLog logs every set of a batch file. path "-" reads stdin.
func BatchLog(deps *cli.Deps, path, unitFlag string, dryRun bool) {
	if !requireAPI(deps) {
		return
	}

	unit, ok := resolveUnit(deps, unitFlag)
	if !ok {
		return
	}

	var r io.Reader = deps.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to open batch file\nDetails: %v\n", err)
			deps.Exit(1)
			return
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	rows, err := ParseBatch(r)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a JSON array or one JSON object per line, e.g.")
		_, _ = fmt.Fprintln(deps.Stderr, `  {"exercise": "Squat", "reps": 5, "weight": 225}`)
		deps.Exit(1)
		return
	}
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Batch contains no sets")
		deps.Exit(1)
		return
	}

	inputs, err := toInputs(deps, rows, unit)
	if err != nil {
		fail(deps, "Batch contains invalid rows", err)
		return
	}

	if dryRun {
		_, _ = fmt.Fprintf(deps.Stdout, "Batch parsed: %s (not sent)\n", cli.Plural(len(inputs), "set"))
		return
	}

	reqs, err := deps.Services.Set.BatchLog(deps.Context(), inputs)
	if err != nil {
		fail(deps, "Failed to log batch", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged %s\n", cli.Plural(len(reqs), "set"))
}
