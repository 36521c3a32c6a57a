// Package catalog is the HTTP client for the wger exercise catalog.
//
// Two endpoints are consumed: exercise search (language=2, limit=20) and
// the exercise image list, optionally filtered to primary images. The
// client is injected into the search resolver so tests can redirect calls
// to local httptest servers.
package catalog
