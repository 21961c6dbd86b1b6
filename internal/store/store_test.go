package store_test

import (
	"context"
	"errors"
	"testing"

	"stylus/internal/catalog"
	"stylus/internal/testsupport"
)

func TestInsertAssignsInternalID(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	id, err := st.Insert(context.Background(), &catalog.Album{Artist: "Low", Title: "Secret Name"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !catalog.IsInternalID(id) {
		t.Fatalf("expected internal id, got %q", id)
	}

	second := st.GenerateInternalID()
	if second == id {
		t.Fatal("internal ids must be unique")
	}
}

func TestInsertRejectsDuplicateNormalizedKey(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := st.Insert(ctx, &catalog.Album{Artist: "The Beatles", Title: "Abbey Road"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := st.Insert(ctx, &catalog.Album{Artist: "the beatles", Title: "ABBEY ROAD"}); err == nil {
		t.Fatal("expected unique normalized key violation")
	}
}

func TestLookupByNormalizedKey(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	seeded := testsupport.SeedAlbum(t, st, "Neko Case", "Middle Cyclone")

	found, err := st.LookupByNormalizedKey(ctx, "  NEKO CASE ", "middle cyclone")
	if err != nil {
		t.Fatalf("LookupByNormalizedKey: %v", err)
	}
	if found.ID != seeded.ID {
		t.Fatalf("expected %s, got %s", seeded.ID, found.ID)
	}

	if _, err := st.LookupByNormalizedKey(ctx, "Neko Case", "Blacklisted"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAlbumRoundTrip(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	album := &catalog.Album{
		ID:           "ext-9",
		Artist:       "Björk",
		Title:        "Homogenic",
		ReleaseDate:  "1997-09-20",
		Country:      "IS",
		GenrePrimary: "Electronic",
		Tracks:       []string{"Hunter", "Jóga"},
		Cover:        &catalog.CoverImage{Data: []byte{0xff, 0xd8, 0x01}, Format: "jpeg"},
	}
	if _, err := st.Insert(ctx, album); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := st.GetByID(ctx, "ext-9")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Artist != album.Artist || got.Title != album.Title || got.ReleaseDate != album.ReleaseDate {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Tracks) != 2 || got.Tracks[1] != "Jóga" {
		t.Fatalf("tracks mismatch: %v", got.Tracks)
	}
	if got.Cover.Size() != 3 || got.Cover.Format != "jpeg" {
		t.Fatalf("cover mismatch: %+v", got.Cover)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
}

func TestExclusionPairsSymmetricStorage(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	a := testsupport.SeedAlbum(t, st, "a", "one")
	b := testsupport.SeedAlbum(t, st, "b", "two")

	if err := st.AddExclusionPair(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("AddExclusionPair: %v", err)
	}
	// Reversed ordering collapses onto the same row.
	if err := st.AddExclusionPair(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("AddExclusionPair reversed: %v", err)
	}

	set, err := st.ListExclusionPairs(ctx)
	if err != nil {
		t.Fatalf("ListExclusionPairs: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(set))
	}
	if !set.Contains(a.ID, b.ID) || !set.Contains(b.ID, a.ID) {
		t.Fatal("exclusion set must match both orderings")
	}

	removed, err := st.RemoveExclusionPairsMentioning(ctx, a.ID)
	if err != nil {
		t.Fatalf("RemoveExclusionPairsMentioning: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}

func TestExclusionPairRejectsSelf(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if err := st.AddExclusionPair(context.Background(), "x", "x"); err == nil {
		t.Fatal("expected self-pair rejection")
	}
}

func TestRepointReferences(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	a := testsupport.SeedAlbum(t, st, "a", "one")
	b := testsupport.SeedAlbum(t, st, "b", "two")

	for i, list := range []string{"favorites", "1997", "vinyl"} {
		if err := st.AddListEntry(ctx, list, a.ID, i); err != nil {
			t.Fatalf("AddListEntry: %v", err)
		}
	}

	moved, err := st.RepointReferences(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("RepointReferences: %v", err)
	}
	if moved != 3 {
		t.Fatalf("moved = %d, want 3", moved)
	}

	lists, err := st.ListEntriesFor(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListEntriesFor: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 entries on new id, got %v", lists)
	}
}

func TestApplyMergeIsOneAtomicUnit(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	keep := testsupport.SeedAlbum(t, st, "Metallica", "Master of Puppets")
	doomed := testsupport.SeedAlbum(t, st, "Metalica", "Master of Puppets")
	bystander := testsupport.SeedAlbum(t, st, "Slayer", "Reign in Blood")

	if err := st.AddListEntry(ctx, "thrash", doomed.ID, 0); err != nil {
		t.Fatalf("AddListEntry: %v", err)
	}
	if err := st.AddExclusionPair(ctx, doomed.ID, bystander.ID); err != nil {
		t.Fatalf("AddExclusionPair: %v", err)
	}

	merged, err := st.GetByID(ctx, keep.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	repointed, err := st.ApplyMerge(ctx, keep.ID, merged, doomed.ID)
	if err != nil {
		t.Fatalf("ApplyMerge: %v", err)
	}
	if repointed != 1 {
		t.Fatalf("repointed = %d, want 1", repointed)
	}

	if _, err := st.GetByID(ctx, doomed.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("doomed record should be gone, got %v", err)
	}
	lists, err := st.ListEntriesFor(ctx, keep.ID)
	if err != nil {
		t.Fatalf("ListEntriesFor: %v", err)
	}
	if len(lists) != 1 || lists[0] != "thrash" {
		t.Fatalf("reference not repointed: %v", lists)
	}
	set, err := st.ListExclusionPairs(ctx)
	if err != nil {
		t.Fatalf("ListExclusionPairs: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("stale exclusion pairs survived: %v", set)
	}
}

func TestApplyMergeUpgradesID(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	keep := testsupport.SeedAlbum(t, st, "Portishead", "Dummy")
	if !catalog.IsInternalID(keep.ID) {
		t.Fatalf("seed should get an internal id, got %s", keep.ID)
	}
	doomed := &catalog.Album{ID: "ext-42", Artist: "Portishead", Title: "Dummy (Remastered)"}
	if _, err := st.Insert(ctx, doomed); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := st.AddListEntry(ctx, "triphop", keep.ID, 0); err != nil {
		t.Fatalf("AddListEntry: %v", err)
	}

	merged := keep.Clone()
	merged.ID = "ext-42"
	repointed, err := st.ApplyMerge(ctx, keep.ID, merged, doomed.ID)
	if err != nil {
		t.Fatalf("ApplyMerge: %v", err)
	}
	if repointed != 1 {
		t.Fatalf("repointed = %d, want 1", repointed)
	}

	got, err := st.GetByID(ctx, "ext-42")
	if err != nil {
		t.Fatalf("GetByID after id upgrade: %v", err)
	}
	if got.Artist != "Portishead" || got.Title != "Dummy" {
		t.Fatalf("surviving record mismatch: %+v", got)
	}
	if _, err := st.GetByID(ctx, keep.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatal("old internal id should no longer resolve")
	}
	lists, err := st.ListEntriesFor(ctx, "ext-42")
	if err != nil {
		t.Fatalf("ListEntriesFor: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("list entry must follow the new id, got %v", lists)
	}
}
