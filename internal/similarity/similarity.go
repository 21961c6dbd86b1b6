package similarity

import (
	"strings"

	"stylus/internal/normalize"
)

// Reason tags attached to a Match for diagnostics and review UIs. They
// never influence the numeric score.
const (
	ReasonExactNormalized     = "exact_normalized"
	ReasonVerySimilarSpelling = "very_similar_spelling"
	ReasonSameWordsReordered  = "same_words_reordered"
	ReasonFuzzyMatch          = "fuzzy_match"
)

// Match is a scored comparison of two strings.
type Match struct {
	Score  float64
	Reason string
}

// Similarity normalizes both inputs with the comparison profile and blends
// edit-distance and token-overlap ratios. Two empty strings score 1.0 by
// convention; callers that need empties rejected must pre-filter.
func Similarity(a, b string, opts normalize.Options) Match {
	na := normalize.ForComparison(a, opts)
	nb := normalize.ForComparison(b, opts)

	if na == nb {
		return Match{Score: 1.0, Reason: ReasonExactNormalized}
	}

	edit := EditRatio(na, nb)
	overlap := TokenOverlap(na, nb)

	tokens := len(strings.Fields(na))
	if other := len(strings.Fields(nb)); other < tokens {
		tokens = other
	}

	var score float64
	switch {
	case tokens <= 1:
		score = 0.95*edit + 0.05*overlap
	case tokens == 2:
		score = 0.7*edit + 0.3*overlap
	default:
		score = 0.6*edit + 0.4*overlap
	}

	reason := ReasonFuzzyMatch
	switch {
	case edit > 0.9:
		reason = ReasonVerySimilarSpelling
	case overlap > 0.8:
		reason = ReasonSameWordsReordered
	}

	return Match{Score: score, Reason: reason}
}

// EditRatio converts Levenshtein distance into a [0,1] similarity. Both
// inputs empty scores 1; exactly one empty scores 0.
func EditRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// TokenOverlap is the Jaccard ratio of the whitespace token sets. Both
// inputs empty scores 1; exactly one empty scores 0.
func TokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	union := make(map[string]struct{}, len(ta)+len(tb))
	seen := make(map[string]struct{}, len(ta))
	for _, token := range ta {
		union[token] = struct{}{}
		seen[token] = struct{}{}
	}
	intersection := 0
	for _, token := range tb {
		if _, dup := union[token]; dup {
			if _, hit := seen[token]; hit {
				intersection++
				delete(seen, token)
			}
		}
		union[token] = struct{}{}
	}
	return float64(intersection) / float64(len(union))
}

// levenshtein is the classic two-row dynamic-programming edit distance.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
