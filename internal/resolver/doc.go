// Package resolver maps stable exercise identifiers to displayable image
// locations.
//
// Two strategies implement the [Resolver] interface. [Static] serves a
// fixed identifier-to-folder mapping, downloading each image once to a
// local cache directory and falling back to the remote URL when the
// download fails. [Search] queries the exercise catalog and caches both
// found-a-URL and found-nothing outcomes for a bounded TTL.
//
// [Service] is the facade the rest of the application consumes: single
// and batch resolution, force refresh, and cache clearing. Batch
// resolution runs cache misses in fixed-size concurrent windows so a
// large list never floods the remote providers, and duplicate
// identifiers, within a batch or across concurrent callers, resolve
// exactly once.
package resolver
