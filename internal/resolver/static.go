package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/dmeade/eximg/internal/mapping"
	"github.com/dmeade/eximg/internal/store"
)

const defaultStaticBaseURL = "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/exercises"

// Static resolves identifiers through the fixed identifier-to-folder
// mapping, downloading each image once and serving the local copy after
// that. The remote mapping is immutable per release, so downloads never
// expire.
type Static struct {
	store   *store.Store
	http    *resty.Client
	baseURL string
	dir     string
	log     *logrus.Logger
}

// NewStatic creates the static mapping resolver. client carries the
// per-call deadline; dir is the local image directory, created lazily on
// first download.
func NewStatic(st *store.Store, client *resty.Client, baseURL, dir string, log *logrus.Logger) *Static {
	if baseURL == "" {
		baseURL = defaultStaticBaseURL
	}
	return &Static{
		store:   st,
		http:    client,
		baseURL: baseURL,
		dir:     dir,
		log:     log,
	}
}

func (s *Static) Name() string { return "static" }

// Lookup serves cached outcomes only. Local-file entries have already
// been re-validated by the store; a vanished file reads as a miss here.
func (s *Static) Lookup(identifier string) (string, bool) {
	entry, ok := s.store.Get(identifier)
	if !ok {
		return "", false
	}
	return entry.Location, true
}

// Resolve walks the chain: cached local file, static mapping, download,
// remote-URL fallback. Every failure degrades; nothing propagates.
func (s *Static) Resolve(ctx context.Context, identifier string) string {
	if location, ok := s.Lookup(identifier); ok {
		return location
	}

	folder, ok := mapping.Folder(identifier)
	if !ok {
		// Cache the negative outcome so repeated calls short-circuit.
		s.store.Set(identifier, store.Entry{Kind: store.KindUnresolved})
		return ""
	}

	remoteURL := fmt.Sprintf("%s/%s/0.jpg", s.baseURL, folder)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.WithError(err).WithField("dir", s.dir).Warn("creating image directory")
		return remoteURL
	}

	resp, err := s.http.R().SetContext(ctx).Get(remoteURL)
	if err != nil {
		s.log.WithError(err).WithField("identifier", identifier).Debug("image download failed")
		return remoteURL
	}
	if resp.IsError() {
		s.log.WithFields(logrus.Fields{
			"identifier": identifier,
			"status":     resp.StatusCode(),
		}).Debug("image download rejected")
		return remoteURL
	}

	localPath := filepath.Join(s.dir, identifier+".jpg")
	if err := os.WriteFile(localPath, resp.Bytes(), 0o644); err != nil {
		s.log.WithError(err).WithField("path", localPath).Warn("writing downloaded image")
		return remoteURL
	}

	// Only a completed download is cached; a failed one leaves no entry so
	// the next call retries instead of pinning the remote URL.
	s.store.Set(identifier, store.Entry{Location: localPath, Kind: store.KindLocal})
	return localPath
}
