// Package mapping holds the build-time exercise tables: identifier to
// static image folder, and identifier to catalog search phrase.
//
// Both tables are immutable. Absence from the folder table means the
// static resolver cannot serve the identifier; absence from the term
// table falls back to the identifier with separators normalized to
// spaces.
package mapping
