package dedupe

import (
	"sort"

	"stylus/internal/catalog"
	"stylus/internal/normalize"
	"stylus/internal/similarity"
)

const (
	// artistWeight and titleWeight blend the two field scores into the
	// pair confidence. Titles discriminate harder than artists, so they
	// carry more weight.
	artistWeight = 0.4
	titleWeight  = 0.6

	// fieldFloor is the per-field veto: both sub-scores must clear it for
	// a pairing to count at all, regardless of overall confidence.
	fieldFloor = 0.5
)

// Score is the result of comparing two albums field by field.
type Score struct {
	Confidence   float64
	ArtistScore  float64
	ArtistReason string
	TitleScore   float64
	TitleReason  string
}

// PotentialMatch reports whether both field scores clear the veto floor.
func (s Score) PotentialMatch() bool {
	return s.ArtistScore > fieldFloor && s.TitleScore > fieldFloor
}

// Candidate pairs a corpus album with its score against the subject.
type Candidate struct {
	Album           *catalog.Album
	Score           Score
	ShouldAutoMerge bool
}

// Options tunes a FindCandidates call.
type Options struct {
	// Threshold is the minimum confidence for a result.
	Threshold float64
	// MaxResults truncates the ranked list when positive.
	MaxResults int
	// AutoMergeThreshold, when positive, flags results safe to merge
	// without review. Acting on the flag is the caller's policy.
	AutoMergeThreshold float64
	// Exclusions are human-confirmed distinct pairs to skip.
	Exclusions catalog.ExclusionSet
	// Normalize overrides the comparison profile; zero value means
	// normalize.DefaultOptions.
	Normalize *normalize.Options
}

func (o Options) normalizeOptions() normalize.Options {
	if o.Normalize != nil {
		return *o.Normalize
	}
	return normalize.DefaultOptions()
}

// PairScore scores two albums on artist and title independently and blends
// the result. Pure and safe for concurrent use.
func PairScore(a, b *catalog.Album, opts normalize.Options) Score {
	artist := similarity.Similarity(a.Artist, b.Artist, opts)
	title := similarity.Similarity(a.Title, b.Title, opts)
	return Score{
		Confidence:   artistWeight*artist.Score + titleWeight*title.Score,
		ArtistScore:  artist.Score,
		ArtistReason: artist.Reason,
		TitleScore:   title.Score,
		TitleReason:  title.Reason,
	}
}

// FindCandidates ranks corpus albums against subject, honoring exclusion
// pairs, the per-field veto, and the caller's threshold. Results are sorted
// by descending confidence with the album id as a deterministic tie-break.
func FindCandidates(subject *catalog.Album, corpus []*catalog.Album, opts Options) []Candidate {
	normOpts := opts.normalizeOptions()
	candidates := make([]Candidate, 0)

	for _, other := range corpus {
		if other == nil {
			continue
		}
		if subject.ID != "" && other.ID == subject.ID {
			continue
		}
		if opts.Exclusions.Contains(subject.ID, other.ID) {
			continue
		}

		score := PairScore(subject, other, normOpts)
		if !score.PotentialMatch() || score.Confidence < opts.Threshold {
			continue
		}

		candidates = append(candidates, Candidate{
			Album:           other,
			Score:           score,
			ShouldAutoMerge: opts.AutoMergeThreshold > 0 && score.Confidence >= opts.AutoMergeThreshold,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score.Confidence != candidates[j].Score.Confidence {
			return candidates[i].Score.Confidence > candidates[j].Score.Confidence
		}
		return candidates[i].Album.ID < candidates[j].Album.ID
	})

	if opts.MaxResults > 0 && len(candidates) > opts.MaxResults {
		candidates = candidates[:opts.MaxResults]
	}
	return candidates
}
