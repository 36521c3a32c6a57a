package output

import (
	"fmt"
	"io"
	"os"
)

// Writer renders a batch of resolution results in a specific format.
// identifiers carries the caller's input order; locations maps each
// distinct identifier to its resolved location ("" = no image).
type Writer interface {
	Write(w io.Writer, identifiers []string, locations map[string]string) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResults renders the results to outPath, or stdout when outPath is
// empty.
func WriteResults(identifiers []string, locations map[string]string, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, identifiers, locations)
}

// dedupe preserves first-appearance order while dropping repeats, so a
// duplicated input identifier renders once.
func dedupe(identifiers []string) []string {
	seen := make(map[string]bool, len(identifiers))
	out := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
