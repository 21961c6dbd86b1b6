package reconcile

import (
	"context"
	"sort"

	"stylus/internal/catalog"
	"stylus/internal/dedupe"
	"stylus/internal/normalize"
)

const (
	// MinThreshold and MaxThreshold bound the scan threshold; inputs
	// outside the range are clamped, not rejected.
	MinThreshold = 0.03
	MaxThreshold = 0.5

	// DefaultThreshold is used when the caller passes zero.
	DefaultThreshold = 0.15

	// maxReportPairs caps the pairs carried in a Report. The counts in
	// the report stay uncapped.
	maxReportPairs = 100
)

// Pair is one suspected duplicate surfaced by a scan.
type Pair struct {
	A     *catalog.Album
	B     *catalog.Album
	Score dedupe.Score
}

// Report is the outcome of a scan. TotalRecords counts the records that
// entered the comparison after the eligibility filter, not the raw corpus
// size. When the context is cancelled mid-scan, the report holds whatever
// was accumulated and Partial is set.
type Report struct {
	Threshold      float64
	TotalRecords   int
	DuplicatePairs int
	ExclusionPairs int
	Pairs          []Pair
	Partial        bool
}

// ClampThreshold forces a requested threshold into the supported range,
// substituting the default for zero.
func ClampThreshold(v float64) float64 {
	if v == 0 {
		return DefaultThreshold
	}
	if v < MinThreshold {
		return MinThreshold
	}
	if v > MaxThreshold {
		return MaxThreshold
	}
	return v
}

// Scan compares every eligible album against every later album in a stable
// (artist, title) order. Records missing artist, title, or id are excluded
// up front: empty fields score 1.0 against each other by convention, and a
// missing id signals a data-integrity problem a merge must not paper over.
func Scan(ctx context.Context, albums []*catalog.Album, exclusions catalog.ExclusionSet, threshold float64) Report {
	threshold = ClampThreshold(threshold)
	normOpts := normalize.DefaultOptions()

	eligible := make([]*catalog.Album, 0, len(albums))
	for _, album := range albums {
		if album == nil || album.ID == "" {
			continue
		}
		if album.ValidateIdentity() != nil {
			continue
		}
		eligible = append(eligible, album)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Artist != eligible[j].Artist {
			return eligible[i].Artist < eligible[j].Artist
		}
		if eligible[i].Title != eligible[j].Title {
			return eligible[i].Title < eligible[j].Title
		}
		return eligible[i].ID < eligible[j].ID
	})

	report := Report{
		Threshold:      threshold,
		TotalRecords:   len(eligible),
		ExclusionPairs: len(exclusions),
	}

	seen := make(map[catalog.IDPair]struct{})
	pairs := make([]Pair, 0)

	for i := range eligible {
		if ctx.Err() != nil {
			report.Partial = true
			break
		}
		for j := i + 1; j < len(eligible); j++ {
			a, b := eligible[i], eligible[j]
			if exclusions.Contains(a.ID, b.ID) {
				continue
			}
			key := catalog.NewIDPair(a.ID, b.ID)
			if _, dup := seen[key]; dup {
				continue
			}

			score := dedupe.PairScore(a, b, normOpts)
			if !score.PotentialMatch() || score.Confidence < threshold {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, Pair{A: a, B: b, Score: score})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score.Confidence > pairs[j].Score.Confidence
	})
	report.DuplicatePairs = len(pairs)
	if len(pairs) > maxReportPairs {
		pairs = pairs[:maxReportPairs]
	}
	report.Pairs = pairs
	return report
}
