package resolver

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/dmeade/eximg/internal/store"
)

// DefaultWindow is how many cache-miss identifiers resolve concurrently
// before the next group starts.
const DefaultWindow = 3

// Service is the process-wide resolver facade. It wraps one strategy with
// batch coordination, duplicate suppression, and the refresh/clear
// maintenance operations. All entry points are safe to call at any time
// and never return an error; absence is reported as an empty location.
type Service struct {
	res      Resolver
	store    *store.Store
	imageDir string
	window   int
	log      *logrus.Logger

	group singleflight.Group
}

// NewService wraps res. imageDir may be empty when the strategy keeps no
// files on disk. A non-positive window gets DefaultWindow.
func NewService(res Resolver, st *store.Store, imageDir string, window int, log *logrus.Logger) *Service {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Service{
		res:      res,
		store:    st,
		imageDir: imageDir,
		window:   window,
		log:      log,
	}
}

// Strategy returns the name of the wrapped resolver.
func (s *Service) Strategy() string { return s.res.Name() }

// ResolveOne resolves a single identifier. Concurrent callers asking for
// the same identifier share one resolution.
func (s *Service) ResolveOne(ctx context.Context, identifier string) string {
	v, _, _ := s.group.Do(identifier, func() (any, error) {
		return s.res.Resolve(ctx, identifier), nil
	})
	location, _ := v.(string)
	return location
}

// ResolveAll resolves a batch of identifiers. Cached identifiers are
// served synchronously; the rest resolve in fixed-size windows, each
// window fully finishing before the next begins, which bounds outstanding
// remote calls to the window size regardless of batch size. Duplicates
// are resolved once. The returned map has a key for every distinct input
// identifier; unresolved ones map to "".
func (s *Service) ResolveAll(ctx context.Context, identifiers []string) map[string]string {
	results := make(map[string]string, len(identifiers))
	seen := make(map[string]bool, len(identifiers))
	var misses []string

	for _, id := range identifiers {
		if seen[id] {
			continue
		}
		seen[id] = true
		if location, ok := s.res.Lookup(id); ok {
			results[id] = location
		} else {
			misses = append(misses, id)
		}
	}

	var mu sync.Mutex
	for start := 0; start < len(misses); start += s.window {
		end := min(start+s.window, len(misses))
		var g errgroup.Group
		for _, id := range misses[start:end] {
			g.Go(func() error {
				location := s.ResolveOne(ctx, id)
				mu.Lock()
				results[id] = location
				mu.Unlock()
				return nil
			})
		}
		// Windows never overlap: the merge waits for the whole window.
		_ = g.Wait()
	}
	return results
}

// Refresh discards the cache entry for identifier, removes any downloaded
// file it pointed at, and re-resolves from scratch.
func (s *Service) Refresh(ctx context.Context, identifier string) string {
	if entry, ok := s.store.Delete(identifier); ok && entry.Kind == store.KindLocal {
		if err := os.Remove(entry.Location); err != nil && !os.IsNotExist(err) {
			s.log.WithError(err).WithField("path", entry.Location).Warn("removing cached image")
		}
	}
	return s.ResolveOne(ctx, identifier)
}

// Clear drops every cached entry and all downloaded files.
func (s *Service) Clear() {
	s.store.Clear()
	if s.imageDir == "" {
		return
	}
	if err := os.RemoveAll(s.imageDir); err != nil {
		s.log.WithError(err).WithField("dir", s.imageDir).Warn("removing image directory")
		return
	}
	if err := os.MkdirAll(s.imageDir, 0o755); err != nil {
		s.log.WithError(err).WithField("dir", s.imageDir).Warn("recreating image directory")
	}
}

// Sweep drops cached entries older than ttl and reports how many were
// removed.
func (s *Service) Sweep(ttl time.Duration) int {
	return s.store.Sweep(ttl)
}

// Stats reports cache contents, flagging entries older than ttl.
func (s *Service) Stats(ttl time.Duration) store.Stats {
	return s.store.GetStats(ttl)
}
