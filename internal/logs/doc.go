// Package logs reads the engine log file for display: the last N lines
// for a quick look, plus a polling follow mode for watching long imports
// and reconcile scans.
package logs
