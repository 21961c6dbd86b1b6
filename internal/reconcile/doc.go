// Package reconcile scans the whole catalog for duplicate pairs that
// slipped in historically.
//
// The scan is O(n²) over the corpus and deliberately runs with a looser
// threshold than at-insert matching, because every pair it surfaces goes
// through human review before any merge executes. Scaling past a moderate
// human-curated catalog needs a blocking strategy (bucketing by the first
// letter of the normalized artist, say) as a separate extension.
package reconcile
