// Package logging assembles the structured slog loggers used across
// stylus.
//
// It centralizes level and output plumbing, wraps the slog attribute
// constructors so call sites stay terse, and provides a no-op logger for
// tests and wiring code that cannot fail. Prefer these constructors over
// hand-rolled slog setup so every component emits the same shape.
package logging
