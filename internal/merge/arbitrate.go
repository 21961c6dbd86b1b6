package merge

import (
	"stylus/internal/catalog"
)

// Arbitrate merges incoming into existing field by field and returns the
// merged record plus the names of the fields that changed. Neither input
// is mutated. Arbitrate(x, x) returns x with no changes.
func Arbitrate(existing, incoming *catalog.Album) (*catalog.Album, []string) {
	merged := existing.Clone()
	changed := make([]string, 0, 4)

	// An internally generated id yields to a real external one; anything
	// else keeps the existing id.
	if incoming.ID != "" && !catalog.IsInternalID(incoming.ID) {
		if merged.ID == "" || catalog.IsInternalID(merged.ID) {
			if merged.ID != incoming.ID {
				merged.ID = incoming.ID
				changed = append(changed, "id")
			}
		}
	}

	changed = fillText(&merged.Artist, incoming.Artist, "artist", changed)
	changed = fillText(&merged.Title, incoming.Title, "title", changed)
	changed = fillText(&merged.ReleaseDate, incoming.ReleaseDate, "release_date", changed)
	changed = fillText(&merged.Country, incoming.Country, "country", changed)
	changed = fillText(&merged.GenrePrimary, incoming.GenrePrimary, "genre_primary", changed)
	changed = fillText(&merged.GenreSecondary, incoming.GenreSecondary, "genre_secondary", changed)

	if len(merged.Tracks) == 0 && len(incoming.Tracks) > 0 {
		merged.Tracks = append([]string(nil), incoming.Tracks...)
		changed = append(changed, "tracks")
	}

	// Cover art is monotonic: only a strictly larger image replaces the
	// current one, and the format tag follows the winning image.
	if incoming.Cover.Size() > merged.Cover.Size() {
		merged.Cover = &catalog.CoverImage{
			Data:   append([]byte(nil), incoming.Cover.Data...),
			Format: incoming.Cover.Format,
		}
		changed = append(changed, "cover")
	}

	// Summary, its source, and its fetch time are owned by the summary
	// fetcher and always keep the existing value, populated or not.

	return merged, changed
}

func fillText(dst *string, src, field string, changed []string) []string {
	if *dst == "" && src != "" {
		*dst = src
		changed = append(changed, field)
	}
	return changed
}
