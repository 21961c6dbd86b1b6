// Package config loads, normalizes, and validates stylus configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Matching thresholds, normalizer
// behavior, and storage locations all flow from here so the CLI and the
// engine see one consistent view.
package config
