// Package cli wires together the Cobra command tree for the eximg binary.
//
// It defines the root command and all subcommands (resolve, refresh, cache,
// config, serve, version), binds flags, reads configuration, builds the
// resolver service, and returns deterministic exit codes for scripting.
package cli
