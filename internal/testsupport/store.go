package testsupport

import (
	"context"
	"testing"

	"stylus/internal/catalog"
	"stylus/internal/config"
	"stylus/internal/store"
)

// MustOpenStore opens a catalog store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedAlbum inserts a minimal album for tests and returns it with its
// assigned id.
func SeedAlbum(t testing.TB, st *store.Store, artist, title string) *catalog.Album {
	t.Helper()

	album := &catalog.Album{Artist: artist, Title: title}
	id, err := st.Insert(context.Background(), album)
	if err != nil {
		t.Fatalf("store.Insert(%q, %q): %v", artist, title, err)
	}
	album.ID = id
	return album
}
