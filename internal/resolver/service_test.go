package resolver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmeade/eximg/internal/logging"
	"github.com/dmeade/eximg/internal/store"
)

// fakeStrategy is a Resolver with a pre-seeded cache and instrumented
// concurrency tracking.
type fakeStrategy struct {
	mu     sync.Mutex
	cached map[string]string

	calls      atomic.Int32
	inFlight   atomic.Int32
	peak atomic.Int32
	delay      time.Duration
}

func (f *fakeStrategy) Name() string { return "fake" }

func (f *fakeStrategy) Lookup(identifier string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	location, ok := f.cached[identifier]
	return location, ok
}

func (f *fakeStrategy) Resolve(ctx context.Context, identifier string) string {
	f.calls.Add(1)
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.peak.Load()
		if cur <= prev || f.peak.CompareAndSwap(prev, cur) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return "resolved:" + identifier
}

func newTestService(t *testing.T, res Resolver, window int) (*Service, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "cache.json"), logging.Discard())
	return NewService(res, st, "", window, logging.Discard()), st
}

func TestService_ResolveAllWindowBound(t *testing.T) {
	f := &fakeStrategy{delay: 20 * time.Millisecond}
	svc, _ := newTestService(t, f, 3)

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	results := svc.ResolveAll(context.Background(), ids)

	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}
	if n := f.calls.Load(); n != 10 {
		t.Errorf("calls = %d, want 10", n)
	}
	if peak := f.peak.Load(); peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
	for _, id := range ids {
		if results[id] != "resolved:"+id {
			t.Errorf("results[%q] = %q", id, results[id])
		}
	}
}

func TestService_ResolveAllMergesCachedAndFresh(t *testing.T) {
	f := &fakeStrategy{cached: map[string]string{"a": "cached:a"}}
	svc, _ := newTestService(t, f, 3)

	results := svc.ResolveAll(context.Background(), []string{"a", "b", "c", "d"})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if results["a"] != "cached:a" {
		t.Errorf("results[a] = %q, want cached value", results["a"])
	}
	// Only the three misses reach the strategy, in a single window.
	if n := f.calls.Load(); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}
	if peak := f.peak.Load(); peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
}

func TestService_ResolveAllDeduplicates(t *testing.T) {
	f := &fakeStrategy{}
	svc, _ := newTestService(t, f, 3)

	results := svc.ResolveAll(context.Background(), []string{"a", "a", "b", "a"})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if n := f.calls.Load(); n != 2 {
		t.Errorf("calls = %d, want 2 (duplicates resolved once)", n)
	}
}

func TestService_ResolveAllCachedNegative(t *testing.T) {
	f := &fakeStrategy{cached: map[string]string{"gone": ""}}
	svc, _ := newTestService(t, f, 3)

	results := svc.ResolveAll(context.Background(), []string{"gone"})
	location, ok := results["gone"]
	if !ok {
		t.Fatal("cached negative must still appear in the result map")
	}
	if location != "" {
		t.Errorf("results[gone] = %q, want empty", location)
	}
	if n := f.calls.Load(); n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
}

func TestService_ResolveOne(t *testing.T) {
	f := &fakeStrategy{}
	svc, _ := newTestService(t, f, 0)

	if got := svc.ResolveOne(context.Background(), "squat"); got != "resolved:squat" {
		t.Errorf("ResolveOne = %q", got)
	}
}

func TestService_Refresh(t *testing.T) {
	f := &fakeStrategy{}
	svc, st := newTestService(t, f, 3)

	img := filepath.Join(t.TempDir(), "squat.jpg")
	if err := os.WriteFile(img, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	st.Set("squat", store.Entry{Location: img, Kind: store.KindLocal})

	location := svc.Refresh(context.Background(), "squat")
	if location != "resolved:squat" {
		t.Errorf("Refresh = %q", location)
	}
	if _, err := os.Stat(img); !os.IsNotExist(err) {
		t.Error("Refresh should remove the cached file")
	}
	if _, ok := st.Get("squat"); ok {
		t.Error("Refresh should drop the cache entry")
	}
	if n := f.calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1 (re-resolution)", n)
	}
}

func TestService_Clear(t *testing.T) {
	f := &fakeStrategy{}
	st := store.New(filepath.Join(t.TempDir(), "cache.json"), logging.Discard())
	imageDir := filepath.Join(t.TempDir(), "images")
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(imageDir, "a.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	st.Set("a", store.Entry{Location: filepath.Join(imageDir, "a.jpg"), Kind: store.KindLocal})

	svc := NewService(f, st, imageDir, 3, logging.Discard())
	svc.Clear()

	if st.Len() != 0 {
		t.Errorf("store has %d entries after Clear", st.Len())
	}
	entries, err := os.ReadDir(imageDir)
	if err != nil {
		t.Fatalf("image dir should be recreated empty: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("image dir has %d files after Clear", len(entries))
	}
}

func TestService_SweepAndStats(t *testing.T) {
	f := &fakeStrategy{}
	svc, st := newTestService(t, f, 3)

	st.Set("stale", store.Entry{Kind: store.KindUnresolved, FetchedAt: time.Now().Add(-8 * 24 * time.Hour)})
	st.Set("fresh", store.Entry{Location: "u", Kind: store.KindRemote, FetchedAt: time.Now()})

	stats := svc.Stats(7 * 24 * time.Hour)
	if stats.Expired != 1 {
		t.Errorf("Expired = %d, want 1", stats.Expired)
	}
	if removed := svc.Sweep(7 * 24 * time.Hour); removed != 1 {
		t.Errorf("Sweep = %d, want 1", removed)
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d after sweep, want 1", st.Len())
	}
}

func TestService_DefaultWindow(t *testing.T) {
	f := &fakeStrategy{}
	svc, _ := newTestService(t, f, 0)
	if svc.window != DefaultWindow {
		t.Errorf("window = %d, want %d", svc.window, DefaultWindow)
	}
	if svc.Strategy() != "fake" {
		t.Errorf("Strategy = %q", svc.Strategy())
	}
}
