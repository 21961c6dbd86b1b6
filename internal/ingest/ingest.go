package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stylus/internal/catalog"
	"stylus/internal/config"
	"stylus/internal/dedupe"
	"stylus/internal/logging"
	"stylus/internal/merge"
	"stylus/internal/normalize"
)

// Action describes how an arrival was routed.
type Action string

const (
	// ActionInserted means a new canonical record was created.
	ActionInserted Action = "inserted"
	// ActionMerged means the exact normalized key already existed and the
	// arrival smart-merged into it.
	ActionMerged Action = "merged"
	// ActionAutoMerged means a fuzzy match cleared the auto-merge
	// threshold and absorbed the arrival without review.
	ActionAutoMerged Action = "auto_merged"
)

// Result reports one routed arrival. Candidates is populated on insert
// when near-misses below the auto-merge bar deserve human review.
type Result struct {
	Album         *catalog.Album
	Action        Action
	FieldsChanged []string
	Candidates    []dedupe.Candidate
}

// Store is the persistence surface ingestion needs.
type Store interface {
	LookupByNormalizedKey(ctx context.Context, artist, title string) (*catalog.Album, error)
	Insert(ctx context.Context, album *catalog.Album) (string, error)
	Update(ctx context.Context, id string, album *catalog.Album) error
	ListAlbums(ctx context.Context) ([]*catalog.Album, error)
	ListExclusionPairs(ctx context.Context) (catalog.ExclusionSet, error)
}

// Ingestor routes arrivals using the configured thresholds.
type Ingestor struct {
	store    Store
	matching config.Matching
	normOpts normalize.Options
	logger   *slog.Logger
}

// New wires an ingestor from application config.
func New(store Store, cfg *config.Config, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = logging.NewNop()
	}
	normOpts := normalize.DefaultOptions()
	normOpts.FoldDiacritics = cfg.Normalize.FoldDiacritics
	return &Ingestor{
		store:    store,
		matching: cfg.Matching,
		normOpts: normOpts,
		logger:   logger,
	}
}

// Ingest routes one arrival. The incoming record is not mutated.
func (i *Ingestor) Ingest(ctx context.Context, incoming *catalog.Album) (Result, error) {
	if err := incoming.ValidateIdentity(); err != nil {
		return Result{}, err
	}
	arrival := sanitizeArrival(incoming)

	existing, err := i.store.LookupByNormalizedKey(ctx, arrival.Artist, arrival.Title)
	switch {
	case err == nil:
		return i.mergeInPlace(ctx, existing, arrival, ActionMerged)
	case errors.Is(err, catalog.ErrNotFound):
		// fall through to fuzzy matching
	default:
		return Result{}, fmt.Errorf("lookup %q / %q: %w", arrival.Artist, arrival.Title, err)
	}

	corpus, err := i.store.ListAlbums(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list corpus: %w", err)
	}
	exclusions, err := i.store.ListExclusionPairs(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list exclusion pairs: %w", err)
	}

	candidates := dedupe.FindCandidates(arrival, corpus, dedupe.Options{
		Threshold:          i.matching.InsertThreshold,
		MaxResults:         i.matching.MaxCandidates,
		AutoMergeThreshold: i.matching.AutoMergeThreshold,
		Exclusions:         exclusions,
		Normalize:          &i.normOpts,
	})

	if len(candidates) > 0 && candidates[0].ShouldAutoMerge {
		best := candidates[0]
		i.logger.Info("auto-merging arrival",
			logging.String("artist", arrival.Artist),
			logging.String("title", arrival.Title),
			logging.String("into_id", best.Album.ID),
			logging.Float64("confidence", best.Score.Confidence))
		return i.mergeInPlace(ctx, best.Album, arrival, ActionAutoMerged)
	}

	id, err := i.store.Insert(ctx, arrival)
	if err != nil {
		return Result{}, fmt.Errorf("insert album: %w", err)
	}
	arrival.ID = id
	i.logger.Info("inserted album",
		logging.String("id", id),
		logging.String("artist", arrival.Artist),
		logging.String("title", arrival.Title),
		logging.Int("flagged_candidates", len(candidates)))
	return Result{Album: arrival, Action: ActionInserted, Candidates: candidates}, nil
}

func (i *Ingestor) mergeInPlace(ctx context.Context, existing, arrival *catalog.Album, action Action) (Result, error) {
	merged, changed := merge.Arbitrate(existing, arrival)
	if len(changed) > 0 {
		if err := i.store.Update(ctx, existing.ID, merged); err != nil {
			return Result{}, fmt.Errorf("persist merge into %s: %w", existing.ID, err)
		}
	}
	i.logger.Info("merged arrival into existing record",
		logging.String("id", existing.ID),
		logging.String("action", string(action)),
		logging.Int("fields_changed", len(changed)))
	return Result{Album: merged, Action: action, FieldsChanged: changed}, nil
}

func sanitizeArrival(incoming *catalog.Album) *catalog.Album {
	arrival := incoming.Clone()
	arrival.Artist = refineCasing(normalize.SanitizeForStorage(arrival.Artist))
	arrival.Title = refineCasing(normalize.SanitizeForStorage(arrival.Title))
	arrival.ReleaseDate = normalize.SanitizeForStorage(arrival.ReleaseDate)
	arrival.Country = normalize.SanitizeForStorage(arrival.Country)
	arrival.GenrePrimary = normalize.SanitizeForStorage(arrival.GenrePrimary)
	arrival.GenreSecondary = normalize.SanitizeForStorage(arrival.GenreSecondary)
	for idx, track := range arrival.Tracks {
		arrival.Tracks[idx] = normalize.SanitizeForStorage(track)
	}
	return arrival
}
