// Eximg is a local-first CLI for resolving exercise identifiers to images.
//
// It maps stable identifiers to image locations through a static catalog or
// a remote search backend, caching every answer on disk so repeated lookups
// never touch the network.
//
// Usage:
//
//	eximg resolve squat push-up        # resolve one or more identifiers
//	eximg resolve --strategy search squat  # resolve via the search backend
//	eximg refresh squat                # drop and re-resolve one identifier
//	eximg cache show                   # print cache statistics
//	eximg cache sweep                  # evict expired entries
//	eximg serve                        # expose resolution over HTTP
//
// See https://github.com/dmeade/eximg for full documentation.
package main
