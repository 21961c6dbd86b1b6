package reconcile

import (
	"context"
	"testing"

	"stylus/internal/catalog"
)

func album(id, artist, title string) *catalog.Album {
	return &catalog.Album{ID: id, Artist: artist, Title: title}
}

func TestClampThreshold(t *testing.T) {
	cases := map[float64]float64{
		0:    DefaultThreshold,
		0.01: MinThreshold,
		0.03: 0.03,
		0.15: 0.15,
		0.5:  0.5,
		0.9:  MaxThreshold,
	}
	for input, want := range cases {
		if got := ClampThreshold(input); got != want {
			t.Fatalf("ClampThreshold(%v) = %v, want %v", input, got, want)
		}
	}
}

func TestScanFindsTypoDuplicates(t *testing.T) {
	albums := []*catalog.Album{
		album("1", "Metallica", "Master of Puppets"),
		album("2", "Metalica", "Master of Puppets"),
		album("3", "Slayer", "Reign in Blood"),
	}

	report := Scan(context.Background(), albums, nil, 0.15)
	if report.TotalRecords != 3 {
		t.Fatalf("TotalRecords = %d", report.TotalRecords)
	}
	if report.DuplicatePairs != 1 {
		t.Fatalf("DuplicatePairs = %d, want 1 (pairs: %v)", report.DuplicatePairs, report.Pairs)
	}
	pair := report.Pairs[0]
	if pair.Score.ArtistScore <= 0.5 {
		t.Fatalf("artist score = %v, want > 0.5", pair.Score.ArtistScore)
	}
	if pair.Score.TitleScore != 1.0 {
		t.Fatalf("title score = %v, want 1.0", pair.Score.TitleScore)
	}
}

func TestScanExcludesIncompleteRecords(t *testing.T) {
	albums := []*catalog.Album{
		album("1", "Metallica", "Master of Puppets"),
		album("2", "", "Master of Puppets"),
		album("3", "Metallica", ""),
		album("", "Metallica", "Master of Puppets"),
	}

	report := Scan(context.Background(), albums, nil, 0.15)
	if report.TotalRecords != 1 {
		t.Fatalf("TotalRecords = %d, want 1 eligible record", report.TotalRecords)
	}
	if report.DuplicatePairs != 0 {
		t.Fatalf("incomplete records must not pair, got %d", report.DuplicatePairs)
	}
}

func TestScanSkipsExclusionPairsBothOrderings(t *testing.T) {
	albums := []*catalog.Album{
		album("1", "Metallica", "Master of Puppets"),
		album("2", "Metalica", "Master of Puppets"),
	}

	exclusions := catalog.NewExclusionSet()
	exclusions.Add("2", "1") // reversed relative to scan order

	report := Scan(context.Background(), albums, exclusions, 0.15)
	if report.DuplicatePairs != 0 {
		t.Fatalf("excluded pair resurfaced: %v", report.Pairs)
	}
	if report.ExclusionPairs != 1 {
		t.Fatalf("ExclusionPairs = %d", report.ExclusionPairs)
	}
}

func TestScanReportsEachPairOnce(t *testing.T) {
	albums := []*catalog.Album{
		album("1", "Nirvana", "Nevermind"),
		album("2", "Nirvana", "Nevermindd"),
		album("3", "Nirvana", "Nevermind (Remastered)"),
	}

	report := Scan(context.Background(), albums, nil, 0.15)
	seen := make(map[catalog.IDPair]struct{})
	for _, pair := range report.Pairs {
		key := catalog.NewIDPair(pair.A.ID, pair.B.ID)
		if _, dup := seen[key]; dup {
			t.Fatalf("pair %v reported twice", key)
		}
		if pair.A.ID == pair.B.ID {
			t.Fatal("self-pair reported")
		}
		seen[key] = struct{}{}
	}
}

func TestScanSortedByConfidence(t *testing.T) {
	albums := []*catalog.Album{
		album("1", "Nirvana", "Nevermind"),
		album("2", "Nirvana", "Nevermind (Remastered)"),
		album("3", "Nirvana", "Neverminddd"),
	}

	report := Scan(context.Background(), albums, nil, 0.15)
	for i := 1; i < len(report.Pairs); i++ {
		if report.Pairs[i].Score.Confidence > report.Pairs[i-1].Score.Confidence {
			t.Fatal("pairs not sorted by descending confidence")
		}
	}
}

func TestScanCancellationReturnsPartial(t *testing.T) {
	albums := []*catalog.Album{
		album("1", "a", "one"),
		album("2", "b", "two"),
		album("3", "c", "three"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := Scan(ctx, albums, nil, 0.15)
	if !report.Partial {
		t.Fatal("cancelled scan must be marked partial")
	}
	if report.DuplicatePairs != 0 {
		t.Fatalf("cancelled-before-start scan accumulated pairs: %d", report.DuplicatePairs)
	}
}
