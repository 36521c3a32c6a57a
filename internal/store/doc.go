// Package store persists resolved image locations as a single JSON blob.
//
// Each entry is a tagged variant: a downloaded local file, a remote URL,
// or an unresolved marker recording that a lookup definitively found
// nothing. Local-file entries are re-validated against the filesystem on
// every read, so an externally deleted file surfaces as a cache miss
// rather than a dangling path.
//
// Persistence is write-through and best-effort: the in-memory map is
// authoritative for the life of the process, and a failed flush is logged
// and swallowed. An unreadable or unparseable blob loads as an empty
// store.
package store
