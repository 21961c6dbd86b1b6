package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stylus/internal/catalog"
	"stylus/internal/logging"
)

// ErrSelfMerge is returned when keep and delete name the same record.
var ErrSelfMerge = errors.New("cannot merge a record into itself")

// Store is the narrow persistence port the executor needs. ApplyMerge must
// perform the keep-record update, reference repoint, delete, and exclusion
// cleanup as one atomic unit and report how many references were repointed.
type Store interface {
	GetByID(ctx context.Context, id string) (*catalog.Album, error)
	// ApplyMerge persists merged onto the row currently keyed keepID
	// (arbitration may upgrade an internal id to an external one),
	// repoints references, deletes deleteID, and purges exclusion pairs
	// mentioning deleteID, all in one transaction.
	ApplyMerge(ctx context.Context, keepID string, merged *catalog.Album, deleteID string) (int64, error)
}

// Result summarizes an executed merge for audit logging.
type Result struct {
	KeepID              string
	DeleteID            string
	FieldsChanged       []string
	ReferencesRepointed int64
	RecordsDeleted      int
}

// Executor applies confirmed keep/delete decisions.
type Executor struct {
	store  Store
	logger *slog.Logger
}

// NewExecutor wires an executor. A nil logger is replaced with a no-op.
func NewExecutor(store Store, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{store: store, logger: logger}
}

// Merge collapses deleteID into keepID. The keep record must exist; a
// missing delete record means the merge already happened and is a safe
// no-op, which keeps retries idempotent.
func (e *Executor) Merge(ctx context.Context, keepID, deleteID string) (Result, error) {
	if keepID == deleteID {
		return Result{}, ErrSelfMerge
	}

	keep, err := e.store.GetByID(ctx, keepID)
	if err != nil {
		return Result{}, fmt.Errorf("load keep record %s: %w", keepID, err)
	}

	doomed, err := e.store.GetByID(ctx, deleteID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			e.logger.Info("merge target already gone",
				logging.String("keep_id", keepID),
				logging.String("delete_id", deleteID))
			return Result{KeepID: keepID, DeleteID: deleteID}, nil
		}
		return Result{}, fmt.Errorf("load delete record %s: %w", deleteID, err)
	}

	merged, changed := Arbitrate(keep, doomed)
	repointed, err := e.store.ApplyMerge(ctx, keepID, merged, deleteID)
	if err != nil {
		return Result{}, fmt.Errorf("apply merge %s <- %s: %w", keepID, deleteID, err)
	}

	result := Result{
		KeepID:              keepID,
		DeleteID:            deleteID,
		FieldsChanged:       changed,
		ReferencesRepointed: repointed,
		RecordsDeleted:      1,
	}
	e.logger.Info("merged albums",
		logging.String("keep_id", keepID),
		logging.String("delete_id", deleteID),
		logging.Int("fields_changed", len(changed)),
		logging.Int64("references_repointed", repointed))
	return result, nil
}
