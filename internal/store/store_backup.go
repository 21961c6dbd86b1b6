package store

import (
	"context"
	"fmt"

	"stylus/internal/fileutil"
)

// BackupTo snapshots the catalog database into dst. The WAL is
// checkpointed first so the main database file holds every committed
// write, then the file is copied with integrity verification.
func (s *Store) BackupTo(ctx context.Context, dst string) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpoint wal: %w", err)
	}
	if err := fileutil.CopyVerified(s.path, dst); err != nil {
		return fmt.Errorf("backup database: %w", err)
	}
	return nil
}
