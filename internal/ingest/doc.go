// Package ingest routes incoming album metadata into the catalog.
//
// Each arrival is sanitized for storage, checked against the exact
// normalized key, and then fuzzily matched against the corpus. An exact
// hit smart-merges in place, a high-confidence fuzzy hit merges
// automatically when the operator has opted in, and everything else is
// inserted with any near-misses flagged for human review.
package ingest
