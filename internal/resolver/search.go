package resolver

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dmeade/eximg/internal/catalog"
	"github.com/dmeade/eximg/internal/mapping"
	"github.com/dmeade/eximg/internal/store"
)

// DefaultTTL bounds how long a search outcome, positive or negative, is
// trusted before the catalog is asked again.
const DefaultTTL = 7 * 24 * time.Hour

// Search resolves identifiers through the exercise catalog: search by
// term, then fetch the best match's image list. Both found-a-URL and
// found-nothing outcomes are cached with a timestamp and honored until
// the TTL elapses.
type Search struct {
	store   *store.Store
	catalog *catalog.Client
	ttl     time.Duration
	log     *logrus.Logger

	now func() time.Time
}

// NewSearch creates the search resolver. A non-positive ttl gets
// DefaultTTL.
func NewSearch(st *store.Store, cat *catalog.Client, ttl time.Duration, log *logrus.Logger) *Search {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Search{
		store:   st,
		catalog: cat,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

func (s *Search) Name() string { return "search" }

// Lookup returns a cached outcome still within the TTL window, including
// cached negatives.
func (s *Search) Lookup(identifier string) (string, bool) {
	entry, ok := s.store.Get(identifier)
	if !ok || entry.Expired(s.ttl, s.now()) {
		return "", false
	}
	return entry.Location, true
}

// Resolve performs the two-step catalog lookup when no fresh cache entry
// exists.
//
// Policy: a transport-level search failure returns "no image" without
// writing a cache entry, so the very next call retries; a confirmed empty
// result set is negative-cached for the full TTL.
func (s *Search) Resolve(ctx context.Context, identifier string) string {
	if location, ok := s.Lookup(identifier); ok {
		return location
	}

	term := mapping.Term(identifier)
	exercises, err := s.catalog.Search(ctx, term)
	if err != nil {
		s.log.WithError(err).WithField("identifier", identifier).Debug("catalog search failed")
		return ""
	}
	if len(exercises) == 0 {
		s.cacheNegative(identifier)
		return ""
	}

	baseID := exercises[0].Base

	images, err := s.catalog.Images(ctx, baseID, true)
	if err != nil {
		s.log.WithError(err).WithField("identifier", identifier).Debug("primary image fetch failed")
		images = nil
	}
	if len(images) == 0 {
		images, err = s.catalog.Images(ctx, baseID, false)
		if err != nil {
			s.log.WithError(err).WithField("identifier", identifier).Debug("image fetch failed")
			images = nil
		}
	}
	if len(images) == 0 {
		s.cacheNegative(identifier)
		return ""
	}

	url := images[0].Image
	s.store.Set(identifier, store.Entry{
		Location:  url,
		Kind:      store.KindRemote,
		FetchedAt: s.now(),
	})
	return url
}

func (s *Search) cacheNegative(identifier string) {
	s.store.Set(identifier, store.Entry{
		Kind:      store.KindUnresolved,
		FetchedAt: s.now(),
	})
}
