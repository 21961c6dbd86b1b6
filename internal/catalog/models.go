package catalog

import (
	"errors"
	"strings"
	"time"
)

// InternalIDPrefix tags ids generated locally rather than sourced from an
// external catalog. External ids never carry this prefix.
const InternalIDPrefix = "internal-"

// ErrNotFound is returned by stores when no album matches the requested key.
var ErrNotFound = errors.New("album not found")

// CoverImage holds raw cover art bytes plus the source format tag.
type CoverImage struct {
	Data   []byte
	Format string
}

// Size returns the byte length of the image, zero for a nil image.
func (c *CoverImage) Size() int {
	if c == nil {
		return 0
	}
	return len(c.Data)
}

// Summary is free-text album prose captured from a single source. The
// fields travel together: once Text is populated the trio is never
// overwritten by a merge.
type Summary struct {
	Text      string
	Source    string
	FetchedAt time.Time
}

// Album is the canonical record for one real-world album. Optional text
// fields use the empty string as absent; the cover image uses nil.
type Album struct {
	ID             string
	Artist         string
	Title          string
	ReleaseDate    string
	Country        string
	GenrePrimary   string
	GenreSecondary string
	Tracks         []string
	Cover          *CoverImage
	Summary        Summary
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsInternalID reports whether id was generated locally.
func IsInternalID(id string) bool {
	return strings.HasPrefix(id, InternalIDPrefix)
}

// ValidateIdentity ensures the fields every engine operation depends on are
// present. Callers must reject invalid input before scoring or merging.
func (a *Album) ValidateIdentity() error {
	if a == nil {
		return errors.New("album is nil")
	}
	if strings.TrimSpace(a.Artist) == "" {
		return errors.New("album artist is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("album title is required")
	}
	return nil
}

// Clone returns a deep copy so merge arbitration can stay pure.
func (a *Album) Clone() *Album {
	if a == nil {
		return nil
	}
	out := *a
	if a.Tracks != nil {
		out.Tracks = append([]string(nil), a.Tracks...)
	}
	if a.Cover != nil {
		cover := CoverImage{Data: append([]byte(nil), a.Cover.Data...), Format: a.Cover.Format}
		out.Cover = &cover
	}
	return &out
}
