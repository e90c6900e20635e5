package logging

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter duplicates writes to all its writers. A failing writer
// does not stop the others; all errors are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		written = true
	}
	if !written {
		return 0, err
	}
	return len(p), err
}
