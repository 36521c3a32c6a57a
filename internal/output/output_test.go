package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestGetWriter(t *testing.T) {
	if _, err := GetWriter("text"); err != nil {
		t.Errorf("text writer: %v", err)
	}
	if _, err := GetWriter("json"); err != nil {
		t.Errorf("json writer: %v", err)
	}
	if _, err := GetWriter("yaml"); err == nil {
		t.Error("unknown format should error")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	err := w.Write(&buf, []string{"squat", "unknown-exercise"}, map[string]string{
		"squat": "/cache/images/squat.jpg",
	})
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "/cache/images/squat.jpg") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "(no image)") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestTextWriter_DuplicatesRenderedOnce(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, []string{"squat", "squat"}, map[string]string{"squat": "x"}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if n := strings.Count(buf.String(), "squat"); n != 1 {
		t.Errorf("squat appears %d times, want 1", n)
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	err := w.Write(&buf, []string{"squat", "unknown-exercise"}, map[string]string{
		"squat": "https://example.com/squat.jpg",
	})
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var results []struct {
		Identifier string  `json:"identifier"`
		Location   *string `json:"location"`
	}
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Identifier != "squat" || results[0].Location == nil {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Location != nil {
		t.Errorf("unresolved identifier should have null location, got %v", *results[1].Location)
	}
}
