package merge

import (
	"reflect"
	"testing"
	"time"

	"stylus/internal/catalog"
)

func TestArbitrateIdempotent(t *testing.T) {
	album := &catalog.Album{
		ID:           "ext-1",
		Artist:       "Metallica",
		Title:        "Master of Puppets",
		ReleaseDate:  "1986-03-03",
		Country:      "US",
		GenrePrimary: "Metal",
		Tracks:       []string{"Battery", "Master of Puppets"},
		Cover:        &catalog.CoverImage{Data: []byte{1, 2, 3}, Format: "jpeg"},
		Summary:      catalog.Summary{Text: "classic", Source: "editorial", FetchedAt: time.Now()},
	}

	merged, changed := Arbitrate(album, album)
	if len(changed) != 0 {
		t.Fatalf("merge(x, x) changed fields: %v", changed)
	}
	if !reflect.DeepEqual(merged, album) {
		t.Fatalf("merge(x, x) != x:\n%+v\n%+v", merged, album)
	}
}

func TestArbitrateNeverOverwritesPopulatedFields(t *testing.T) {
	existing := &catalog.Album{
		ID:          "ext-1",
		Artist:      "Metallica",
		Title:       "Master of Puppets",
		ReleaseDate: "1986-03-03",
	}
	incoming := &catalog.Album{
		ID:          "ext-2",
		Artist:      "METALLICA!!!",
		Title:       "Master of Puppets (Remastered)",
		ReleaseDate: "1987-01-01",
		Country:     "US",
	}

	merged, changed := Arbitrate(existing, incoming)
	if merged.ID != "ext-1" {
		t.Fatalf("existing external id must win, got %s", merged.ID)
	}
	if merged.Artist != "Metallica" || merged.Title != "Master of Puppets" {
		t.Fatalf("populated fields overwritten: %+v", merged)
	}
	if merged.ReleaseDate != "1986-03-03" {
		t.Fatalf("populated release date overwritten: %s", merged.ReleaseDate)
	}
	if merged.Country != "US" {
		t.Fatalf("empty country should adopt incoming, got %q", merged.Country)
	}
	if !reflect.DeepEqual(changed, []string{"country"}) {
		t.Fatalf("changed = %v, want [country]", changed)
	}
}

func TestArbitrateFillsGapsOnly(t *testing.T) {
	existing := &catalog.Album{ID: "ext-1", Artist: "Low", Title: "Things We Lost in the Fire"}
	incoming := &catalog.Album{
		Artist:         "Low",
		Title:          "Things We Lost in the Fire",
		Country:        "US",
		GenrePrimary:   "Slowcore",
		GenreSecondary: "Indie",
		Tracks:         []string{"Sunflower", "Whitetail"},
	}

	merged, changed := Arbitrate(existing, incoming)
	if merged.GenrePrimary != "Slowcore" || merged.GenreSecondary != "Indie" {
		t.Fatalf("genres not adopted: %+v", merged)
	}
	if len(merged.Tracks) != 2 {
		t.Fatalf("tracks not adopted: %v", merged.Tracks)
	}
	if len(changed) != 4 {
		t.Fatalf("changed = %v, want 4 entries", changed)
	}
}

func TestArbitrateTracksKeepExistingWhenPresent(t *testing.T) {
	existing := &catalog.Album{ID: "1", Artist: "a", Title: "t", Tracks: []string{"one"}}
	incoming := &catalog.Album{Artist: "a", Title: "t", Tracks: []string{"one", "two", "three"}}

	merged, _ := Arbitrate(existing, incoming)
	if len(merged.Tracks) != 1 {
		t.Fatalf("existing track listing must survive, got %v", merged.Tracks)
	}
}

func TestArbitrateCoverOnlyUpgrades(t *testing.T) {
	small := &catalog.CoverImage{Data: []byte{1, 2}, Format: "jpeg"}
	large := &catalog.CoverImage{Data: []byte{1, 2, 3, 4}, Format: "png"}
	sameSize := &catalog.CoverImage{Data: []byte{9, 9}, Format: "png"}

	existing := &catalog.Album{ID: "1", Artist: "a", Title: "t", Cover: small}

	merged, changed := Arbitrate(existing, &catalog.Album{Artist: "a", Title: "t", Cover: large})
	if merged.Cover.Size() != 4 || merged.Cover.Format != "png" {
		t.Fatalf("larger cover should win with its format, got %+v", merged.Cover)
	}
	if len(changed) != 1 || changed[0] != "cover" {
		t.Fatalf("changed = %v", changed)
	}

	merged, changed = Arbitrate(existing, &catalog.Album{Artist: "a", Title: "t", Cover: sameSize})
	if merged.Cover.Format != "jpeg" || len(changed) != 0 {
		t.Fatalf("equal-size cover must not replace existing, got %+v (changed %v)", merged.Cover, changed)
	}

	merged, _ = Arbitrate(existing, &catalog.Album{Artist: "a", Title: "t"})
	if merged.Cover.Size() != 2 {
		t.Fatal("missing incoming cover must not clear existing")
	}
}

func TestArbitrateSummaryNeverClobbered(t *testing.T) {
	existing := &catalog.Album{ID: "1", Artist: "a", Title: "t"}
	incoming := &catalog.Album{
		Artist:  "a",
		Title:   "t",
		Summary: catalog.Summary{Text: "incoming text", Source: "import", FetchedAt: time.Now()},
	}

	merged, changed := Arbitrate(existing, incoming)
	if merged.Summary.Text != "" || merged.Summary.Source != "" {
		t.Fatalf("summary fields are filled asynchronously and must keep existing values, got %+v", merged.Summary)
	}
	if len(changed) != 0 {
		t.Fatalf("changed = %v", changed)
	}
}

func TestArbitrateInternalIDYieldsToExternal(t *testing.T) {
	keep := &catalog.Album{ID: "ext-77", Artist: "a", Title: "t"}
	doomed := &catalog.Album{
		ID:     catalog.InternalIDPrefix + "abc",
		Artist: "a",
		Title:  "t",
		Cover:  &catalog.CoverImage{Data: []byte{1, 2, 3}, Format: "jpeg"},
	}

	merged, _ := Arbitrate(keep, doomed)
	if merged.ID != "ext-77" {
		t.Fatalf("external keep id must survive, got %s", merged.ID)
	}
	if merged.Cover.Size() != 3 {
		t.Fatal("doomed record's cover should be adopted")
	}

	// Reversed roles: the internal id yields to the incoming external id.
	merged, changed := Arbitrate(doomed, keep)
	if merged.ID != "ext-77" {
		t.Fatalf("internal id must yield to external, got %s", merged.ID)
	}
	if changed[0] != "id" {
		t.Fatalf("changed = %v, want id first", changed)
	}
}
