// Package logging constructs the shared logrus logger used across eximg.
//
// The resolver subsystem never surfaces errors to its callers; degraded
// operations (failed downloads, unwritable cache blobs) are reported here
// instead. Disk and persistence problems log at warn, transport problems at
// debug, so a flaky network does not spam interactive use.
package logging
