// Package server exposes the resolver service over a localhost JSON API.
//
// Routes:
//
//	GET    /v1/images?ids=a,b,c   batch resolution, null for no image
//	POST   /v1/refresh/:identifier  discard and re-resolve one identifier
//	DELETE /v1/cache              drop all cached entries and files
//	GET    /v1/cache/stats        cache contents by kind
//	GET    /healthz
//
// Run also schedules an hourly sweep of expired cache entries.
package server
