// Package main hosts the stylus CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into catalog
// operations: JSON imports routed through the deduplication engine,
// full-catalog reconciliation scans, confirmed merges and exclusions, record
// display, log tailing, and database backups. It centralizes configuration
// resolution, structured logging setup, and store lifetime so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
