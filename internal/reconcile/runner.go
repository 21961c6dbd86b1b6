package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"stylus/internal/catalog"
	"stylus/internal/logging"
)

// ErrScanInProgress is returned when another reconciliation already holds
// the scan lock for this catalog.
var ErrScanInProgress = errors.New("another reconciliation scan is already running")

// Catalog is the read surface a scan needs: a stable-ordered album listing
// and the current exclusion snapshot.
type Catalog interface {
	ListAlbums(ctx context.Context) ([]*catalog.Album, error)
	ListExclusionPairs(ctx context.Context) (catalog.ExclusionSet, error)
}

// Runner loads a catalog snapshot and runs a scan under a file lock so at
// most one reconciliation touches a catalog at a time.
type Runner struct {
	catalog  Catalog
	lockPath string
	logger   *slog.Logger
}

// NewRunner wires a runner. lockDir is where the scan lock file lives,
// normally next to the database.
func NewRunner(cat Catalog, lockDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		catalog:  cat,
		lockPath: filepath.Join(lockDir, "reconcile.lock"),
		logger:   logger,
	}
}

// Run snapshots the catalog and scans it at the given threshold.
func (r *Runner) Run(ctx context.Context, threshold float64) (Report, error) {
	lock := flock.New(r.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return Report{}, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !ok {
		return Report{}, ErrScanInProgress
	}
	defer func() { _ = lock.Unlock() }()

	albums, err := r.catalog.ListAlbums(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list albums: %w", err)
	}
	exclusions, err := r.catalog.ListExclusionPairs(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list exclusion pairs: %w", err)
	}

	start := time.Now()
	report := Scan(ctx, albums, exclusions, threshold)
	r.logger.Info("reconciliation scan finished",
		logging.Float64("threshold", report.Threshold),
		logging.Int("records", report.TotalRecords),
		logging.Int("duplicate_pairs", report.DuplicatePairs),
		logging.Int("exclusion_pairs", report.ExclusionPairs),
		logging.Bool("partial", report.Partial),
		logging.Duration("elapsed", time.Since(start)))
	return report, nil
}
