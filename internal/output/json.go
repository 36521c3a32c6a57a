package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter outputs an ordered array of identifier/location pairs.
// Unresolved identifiers carry a null location so consumers can
// distinguish "no image" without string sentinels.
type JSONWriter struct{}

type jsonResult struct {
	Identifier string  `json:"identifier"`
	Location   *string `json:"location"`
}

func (j *JSONWriter) Write(w io.Writer, identifiers []string, locations map[string]string) error {
	ids := dedupe(identifiers)
	results := make([]jsonResult, 0, len(ids))
	for _, id := range ids {
		r := jsonResult{Identifier: id}
		if location := locations[id]; location != "" {
			r.Location = &location
		}
		results = append(results, r)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
