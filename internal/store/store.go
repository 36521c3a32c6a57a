package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Kind tags how a cached location should be interpreted.
type Kind string

const (
	// KindLocal means Location is a path to a downloaded file on disk.
	KindLocal Kind = "local"
	// KindRemote means Location is a remote URL.
	KindRemote Kind = "remote"
	// KindUnresolved records that a lookup was attempted and definitively
	// found nothing. Distinct from "never looked up".
	KindUnresolved Kind = "unresolved"
)

// Entry is one cached resolution outcome. Location is empty exactly when
// Kind is KindUnresolved. FetchedAt is zero for entries that never expire
// (static downloads); the search resolver sets it to enforce its TTL.
type Entry struct {
	Location  string    `json:"location,omitempty"`
	Kind      Kind      `json:"kind"`
	FetchedAt time.Time `json:"fetchedAt,omitzero"`
}

// Expired reports whether the entry carries a timestamp older than ttl.
// Entries without a timestamp never expire.
func (e Entry) Expired(ttl time.Duration, now time.Time) bool {
	return !e.FetchedAt.IsZero() && now.Sub(e.FetchedAt) > ttl
}

// Store is a durable identifier-to-entry map persisted as a single JSON
// blob. The in-memory map is authoritative: every mutation is flushed
// write-through, but a flush failure is logged and swallowed.
type Store struct {
	path string
	log  *logrus.Logger

	mu      sync.Mutex
	entries map[string]Entry
}

// New opens the store backed by the blob at path, loading any persisted
// entries. A missing, corrupt, or unparseable blob starts the store empty;
// New never fails because of blob content.
func New(path string, log *logrus.Logger) *Store {
	s := &Store{
		path:    path,
		log:     log,
		entries: make(map[string]Entry),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("discarding unparseable cache blob")
		s.entries = make(map[string]Entry)
	}
	return s
}

// Get returns the entry for identifier. Entries of KindLocal are
// re-validated against the filesystem: a vanished file demotes the hit to
// a miss so the caller re-resolves instead of receiving a dangling path.
func (s *Store) Get(identifier string) (Entry, bool) {
	s.mu.Lock()
	entry, ok := s.entries[identifier]
	s.mu.Unlock()
	if !ok {
		return Entry{}, false
	}
	if entry.Kind == KindLocal {
		if _, err := os.Stat(entry.Location); err != nil {
			return Entry{}, false
		}
	}
	return entry, true
}

// Set overwrites the entry for identifier and persists the blob. The
// in-memory value stands even when persistence fails.
func (s *Store) Set(identifier string, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[identifier] = entry
	s.persistLocked()
}

// Delete removes the entry for identifier, returning what was removed so
// callers can clean up any on-disk file it pointed at.
func (s *Store) Delete(identifier string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[identifier]
	if !ok {
		return Entry{}, false
	}
	delete(s.entries, identifier)
	s.persistLocked()
	return entry, true
}

// Clear drops every entry and persists the now-empty blob.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
	s.persistLocked()
}

// Sweep removes entries whose timestamp is older than ttl and returns how
// many were removed. Timestamp-less entries are never swept.
func (s *Store) Sweep(ttl time.Duration) int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int
	for id, entry := range s.entries {
		if entry.Expired(ttl, now) {
			delete(s.entries, id)
			removed++
		}
	}
	if removed > 0 {
		s.persistLocked()
	}
	return removed
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats describes the store contents for `eximg cache show`.
type Stats struct {
	Path       string `json:"path"`
	Entries    int    `json:"entries"`
	Local      int    `json:"local"`
	Remote     int    `json:"remote"`
	Unresolved int    `json:"unresolved"`
	Expired    int    `json:"expired"`
}

// GetStats counts entries by kind and flags those older than ttl.
func (s *Store) GetStats(ttl time.Duration) Stats {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := Stats{Path: s.path, Entries: len(s.entries)}
	for _, entry := range s.entries {
		switch entry.Kind {
		case KindLocal:
			stats.Local++
		case KindRemote:
			stats.Remote++
		case KindUnresolved:
			stats.Unresolved++
		}
		if entry.Expired(ttl, now) {
			stats.Expired++
		}
	}
	return stats
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.log.WithError(err).Warn("marshaling cache blob")
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.WithError(err).Warn("creating cache directory")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("persisting cache blob")
	}
}

// DefaultDir returns the platform-appropriate cache directory for eximg.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "eximg"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "eximg"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "eximg", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "eximg", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "eximg"), nil
	}
}
