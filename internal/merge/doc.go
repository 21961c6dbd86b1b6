// Package merge decides which field values survive when two records
// describe the same album, and applies confirmed keep/delete decisions
// against the store.
//
// Arbitrate is pure and idempotent: populated values are never overwritten,
// cover art only ever upgrades to a strictly larger image, and summary
// fields belong to an asynchronous fetcher that merges must not clobber.
// The Executor wraps the store's single transactional merge unit so no
// reader can observe a deleted record with dangling references.
package merge
