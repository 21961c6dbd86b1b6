// Package normalize produces the string forms the deduplication engine
// works with.
//
// Three profiles exist with strictly increasing aggressiveness:
// SanitizeForStorage keeps case and diacritics and only repairs smart
// punctuation and whitespace, ForLookup lowercases that form to build the
// exact-match key, and ForComparison additionally strips edition suffixes,
// punctuation, and an optional leading article to feed fuzzy scoring.
// Every function is pure, deterministic, idempotent, and total over
// arbitrary input.
package normalize
