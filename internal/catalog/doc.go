// Package catalog defines the canonical album record and the supporting
// types shared by the deduplication engine.
//
// An Album is the single authoritative record for one real-world album.
// Records carry an id that is either externally sourced or internally
// generated; internally generated ids are tagged with a reserved prefix so
// merge arbitration can always tell the two apart. ExclusionSet captures
// human-confirmed "these are distinct albums" decisions keyed by the sorted
// id pair, which makes the symmetric both-orderings lookup structural rather
// than something every caller has to remember.
package catalog
