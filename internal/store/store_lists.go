package store

import (
	"context"
	"fmt"
)

// AddListEntry attaches an album to a named list. Lists are the dependent
// references a merge must repoint before deleting the losing record.
func (s *Store) AddListEntry(ctx context.Context, listName, albumID string, position int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO list_entries (list_name, album_id, position) VALUES (?, ?, ?)",
		listName, albumID, position)
	if err != nil {
		return fmt.Errorf("add list entry: %w", err)
	}
	return nil
}

// ListEntriesFor returns the names of lists referencing an album.
func (s *Store) ListEntriesFor(ctx context.Context, albumID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT list_name FROM list_entries WHERE album_id = ? ORDER BY list_name, position", albumID)
	if err != nil {
		return nil, fmt.Errorf("list entries for %s: %w", albumID, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan list entry: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list entries: %w", err)
	}
	return names, nil
}

// RepointReferences moves every list entry from oldID to newID and
// returns how many rows moved.
func (s *Store) RepointReferences(ctx context.Context, oldID, newID string) (int64, error) {
	return s.repointTx(ctx, s.db, oldID, newID)
}

func (s *Store) repointTx(ctx context.Context, db execer, oldID, newID string) (int64, error) {
	res, err := db.ExecContext(ctx,
		"UPDATE list_entries SET album_id = ? WHERE album_id = ?", newID, oldID)
	if err != nil {
		return 0, fmt.Errorf("repoint references %s -> %s: %w", oldID, newID, err)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("repoint references %s -> %s: rows affected: %w", oldID, newID, err)
	}
	return moved, nil
}
