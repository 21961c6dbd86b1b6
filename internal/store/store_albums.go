package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stylus/internal/catalog"
	"stylus/internal/normalize"
)

const albumColumns = `id, artist, title, release_date, country,
    genre_primary, genre_secondary, tracks_json, cover_data, cover_format,
    summary_text, summary_source, summary_fetched_at, created_at, updated_at`

// Insert stores a new album. A record without an id is assigned an
// internal one. The normalized-key unique index rejects a second record
// for the same (artist, title) pair.
func (s *Store) Insert(ctx context.Context, album *catalog.Album) (string, error) {
	if err := album.ValidateIdentity(); err != nil {
		return "", err
	}
	id := album.ID
	if id == "" {
		id = s.GenerateInternalID()
	}

	now := time.Now().UTC()
	tracksJSON, err := json.Marshal(album.Tracks)
	if err != nil {
		return "", fmt.Errorf("marshal tracks: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO albums (
            id, artist, title, norm_artist, norm_title, release_date, country,
            genre_primary, genre_secondary, tracks_json, cover_data, cover_format,
            summary_text, summary_source, summary_fetched_at, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		album.Artist,
		album.Title,
		normalize.ForLookup(album.Artist),
		normalize.ForLookup(album.Title),
		album.ReleaseDate,
		album.Country,
		album.GenrePrimary,
		album.GenreSecondary,
		string(tracksJSON),
		coverData(album.Cover),
		coverFormat(album.Cover),
		album.Summary.Text,
		album.Summary.Source,
		formatTime(album.Summary.FetchedAt),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return "", fmt.Errorf("insert album: %w", err)
	}
	return id, nil
}

// Update rewrites every mutable field of the row currently keyed by id,
// including the id itself when arbitration upgraded it.
func (s *Store) Update(ctx context.Context, id string, album *catalog.Album) error {
	return s.updateTx(ctx, s.db, id, album)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) updateTx(ctx context.Context, db execer, id string, album *catalog.Album) error {
	tracksJSON, err := json.Marshal(album.Tracks)
	if err != nil {
		return fmt.Errorf("marshal tracks: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`UPDATE albums SET
            id = ?, artist = ?, title = ?, norm_artist = ?, norm_title = ?,
            release_date = ?, country = ?, genre_primary = ?, genre_secondary = ?,
            tracks_json = ?, cover_data = ?, cover_format = ?,
            summary_text = ?, summary_source = ?, summary_fetched_at = ?, updated_at = ?
        WHERE id = ?`,
		album.ID,
		album.Artist,
		album.Title,
		normalize.ForLookup(album.Artist),
		normalize.ForLookup(album.Title),
		album.ReleaseDate,
		album.Country,
		album.GenrePrimary,
		album.GenreSecondary,
		string(tracksJSON),
		coverData(album.Cover),
		coverFormat(album.Cover),
		album.Summary.Text,
		album.Summary.Source,
		formatTime(album.Summary.FetchedAt),
		formatTime(time.Now().UTC()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update album %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update album %s: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update album %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// GetByID loads one album, returning catalog.ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*catalog.Album, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+albumColumns+" FROM albums WHERE id = ?", id)
	album, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("album %s: %w", id, catalog.ErrNotFound)
	}
	return album, err
}

// LookupByNormalizedKey finds the one album matching the exact-match dedup
// key for artist and title, returning catalog.ErrNotFound when absent.
func (s *Store) LookupByNormalizedKey(ctx context.Context, artist, title string) (*catalog.Album, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+albumColumns+" FROM albums WHERE norm_artist = ? AND norm_title = ?",
		normalize.ForLookup(artist), normalize.ForLookup(title))
	album, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("album %q / %q: %w", artist, title, catalog.ErrNotFound)
	}
	return album, err
}

// ListAlbums returns the whole catalog in a stable (artist, title, id)
// order.
func (s *Store) ListAlbums(ctx context.Context) ([]*catalog.Album, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+albumColumns+" FROM albums ORDER BY artist, title, id")
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	albums := make([]*catalog.Album, 0)
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}
	return albums, nil
}

// Delete removes one album row.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete album %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlbum(row rowScanner) (*catalog.Album, error) {
	var (
		album      catalog.Album
		tracksJSON string
		coverBytes []byte
		coverFmt   string
		fetchedAt  string
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(
		&album.ID,
		&album.Artist,
		&album.Title,
		&album.ReleaseDate,
		&album.Country,
		&album.GenrePrimary,
		&album.GenreSecondary,
		&tracksJSON,
		&coverBytes,
		&coverFmt,
		&album.Summary.Text,
		&album.Summary.Source,
		&fetchedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan album: %w", err)
	}

	if tracksJSON != "" && tracksJSON != "null" {
		if err := json.Unmarshal([]byte(tracksJSON), &album.Tracks); err != nil {
			return nil, fmt.Errorf("unmarshal tracks: %w", err)
		}
	}
	if len(coverBytes) > 0 {
		album.Cover = &catalog.CoverImage{Data: coverBytes, Format: coverFmt}
	}
	album.Summary.FetchedAt = parseTime(fetchedAt)
	album.CreatedAt = parseTime(createdAt)
	album.UpdatedAt = parseTime(updatedAt)
	return &album, nil
}

func coverData(cover *catalog.CoverImage) []byte {
	if cover == nil {
		return nil
	}
	return cover.Data
}

func coverFormat(cover *catalog.CoverImage) string {
	if cover == nil {
		return ""
	}
	return cover.Format
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
