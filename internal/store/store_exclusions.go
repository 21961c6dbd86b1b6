package store

import (
	"context"
	"fmt"
	"time"

	"stylus/internal/catalog"
)

// AddExclusionPair records a human confirmation that two albums are
// distinct. The pair is stored sorted, so either argument order produces
// the same row and duplicates are ignored.
func (s *Store) AddExclusionPair(ctx context.Context, a, b string) error {
	if a == b {
		return fmt.Errorf("exclusion pair needs two distinct ids, got %q twice", a)
	}
	pair := catalog.NewIDPair(a, b)
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO exclusion_pairs (id_low, id_high, created_at) VALUES (?, ?, ?)",
		pair.Low, pair.High, formatTime(time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("add exclusion pair: %w", err)
	}
	return nil
}

// ListExclusionPairs loads the full exclusion snapshot.
func (s *Store) ListExclusionPairs(ctx context.Context) (catalog.ExclusionSet, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id_low, id_high FROM exclusion_pairs")
	if err != nil {
		return nil, fmt.Errorf("list exclusion pairs: %w", err)
	}
	defer rows.Close()

	set := make(catalog.ExclusionSet)
	for rows.Next() {
		var low, high string
		if err := rows.Scan(&low, &high); err != nil {
			return nil, fmt.Errorf("scan exclusion pair: %w", err)
		}
		set.Add(low, high)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exclusion pairs: %w", err)
	}
	return set, nil
}

// RemoveExclusionPairsMentioning purges every pair containing id, on
// either side.
func (s *Store) RemoveExclusionPairsMentioning(ctx context.Context, id string) (int64, error) {
	return s.removeExclusionsTx(ctx, s.db, id)
}

func (s *Store) removeExclusionsTx(ctx context.Context, db execer, id string) (int64, error) {
	res, err := db.ExecContext(ctx,
		"DELETE FROM exclusion_pairs WHERE id_low = ? OR id_high = ?", id, id)
	if err != nil {
		return 0, fmt.Errorf("remove exclusion pairs for %s: %w", id, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("remove exclusion pairs for %s: rows affected: %w", id, err)
	}
	return removed, nil
}
