// Package store persists the album catalog in SQLite.
//
// It owns the schema, internal id generation, the normalized-key
// uniqueness constraint, exclusion-pair storage (kept sorted so symmetry
// is structural), and the one transactional unit the engine requires:
// ApplyMerge, which updates the surviving record, repoints list entries,
// deletes the losing record, and purges stale exclusion pairs so no reader
// ever sees the intermediate states.
//
// Schema changes bump schemaVersion in schema.go; the database is rebuilt
// from source catalogs rather than migrated in place.
package store
