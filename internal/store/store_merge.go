package store

import (
	"context"
	"fmt"

	"stylus/internal/catalog"
)

// ApplyMerge persists one confirmed merge as a single transaction: the
// surviving record (keyed keepID before the update, since arbitration may
// upgrade its id) gets the merged fields, every list entry pointing at
// deleteID or the old keep id is repointed at the merged id, the losing
// record is deleted, and exclusion pairs mentioning it are purged. No
// reader ever observes the record gone with references still dangling.
func (s *Store) ApplyMerge(ctx context.Context, keepID string, merged *catalog.Album, deleteID string) (int64, error) {
	if keepID == deleteID {
		return 0, fmt.Errorf("merge %s into itself rejected", keepID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin merge tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// List entries still reference the losing row at this point; defer FK
	// enforcement to commit so the delete/update/repoint order below works.
	if _, err := tx.ExecContext(ctx, "PRAGMA defer_foreign_keys = ON"); err != nil {
		return 0, fmt.Errorf("defer foreign keys: %w", err)
	}

	// The losing row must go before the keep update in case arbitration
	// moved the external id over; otherwise the primary key would collide.
	if _, err := tx.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", deleteID); err != nil {
		return 0, fmt.Errorf("delete album %s: %w", deleteID, err)
	}

	if err := s.updateTx(ctx, tx, keepID, merged); err != nil {
		return 0, err
	}

	repointed, err := s.repointTx(ctx, tx, deleteID, merged.ID)
	if err != nil {
		return 0, err
	}
	if keepID != merged.ID {
		moved, err := s.repointTx(ctx, tx, keepID, merged.ID)
		if err != nil {
			return 0, err
		}
		repointed += moved
	}

	if _, err := s.removeExclusionsTx(ctx, tx, deleteID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit merge tx: %w", err)
	}
	return repointed, nil
}
