// Package config loads and merges eximg configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (EXIMG_STRATEGY, EXIMG_CACHE_DIR, etc.)
//  3. Config file ($XDG_CONFIG_HOME/eximg/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a
// single key in the config file.
package config
