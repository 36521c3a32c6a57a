package output

import (
	"fmt"
	"io"
)

// TextWriter outputs one aligned line per identifier.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, identifiers []string, locations map[string]string) error {
	ids := dedupe(identifiers)

	width := 0
	for _, id := range ids {
		if len(id) > width {
			width = len(id)
		}
	}

	ew := &errWriter{w: w}
	for _, id := range ids {
		location := locations[id]
		if location == "" {
			location = "(no image)"
		}
		ew.printf("%-*s  %s\n", width, id, location)
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
