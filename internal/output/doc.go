// Package output formats batch resolution results for display or machine
// consumption.
//
// Two formats are supported:
//   - text — one aligned identifier/location line per input (default)
//   - json — ordered array with null locations for unresolved identifiers
//
// Use [GetWriter] to obtain a [Writer] for a format string, or
// [WriteResults] to handle destination selection as well.
package output
