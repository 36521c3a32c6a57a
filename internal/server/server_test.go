package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"resty.dev/v3"

	"github.com/dmeade/eximg/internal/logging"
	"github.com/dmeade/eximg/internal/resolver"
	"github.com/dmeade/eximg/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	images := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(images.Close)

	st := store.New(filepath.Join(t.TempDir(), "static_images.json"), logging.Discard())
	dir := filepath.Join(t.TempDir(), "images")
	res := resolver.NewStatic(st, resty.New(), images.URL, dir, logging.Discard())
	svc := resolver.NewService(res, st, dir, 3, logging.Discard())
	return New(svc, 7*24*time.Hour, logging.Discard()), dir
}

func TestServer_Images(t *testing.T) {
	s, dir := newTestServer(t)
	router := s.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/images?ids=squat,unknown-exercise", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Results map[string]*string `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(body.Results))
	}
	squat := body.Results["squat"]
	if squat == nil || *squat != filepath.Join(dir, "squat.jpg") {
		t.Errorf("squat = %v, want local path", squat)
	}
	if body.Results["unknown-exercise"] != nil {
		t.Errorf("unknown-exercise = %v, want null", body.Results["unknown-exercise"])
	}
}

func TestServer_ImagesMissingIDs(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/images", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestServer_Refresh(t *testing.T) {
	s, dir := newTestServer(t)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/refresh/squat", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Identifier string  `json:"identifier"`
		Location   *string `json:"location"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Identifier != "squat" {
		t.Errorf("identifier = %q", body.Identifier)
	}
	if body.Location == nil || *body.Location != filepath.Join(dir, "squat.jpg") {
		t.Errorf("location = %v, want local path", body.Location)
	}
}

func TestServer_ClearCache(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	// Populate, then clear.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/images?ids=squat", nil))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/cache", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil))
	var stats struct {
		Entries int `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("entries = %d after clear, want 0", stats.Entries)
	}
}

func TestServer_Healthz(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestSplitComma(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", nil},
		{"single value", "squat", []string{"squat"}},
		{"multiple values", "a,b,c", []string{"a", "b", "c"}},
		{"whitespace trimmed", " a , b ", []string{"a", "b"}},
		{"empty parts skipped", "a,,b", []string{"a", "b"}},
		{"all empty", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitComma(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitComma(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitComma(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
