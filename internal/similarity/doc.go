// Package similarity scores how likely two strings name the same thing.
//
// The score blends a Levenshtein edit-distance ratio with a Jaccard
// token-overlap ratio; the blend weights shift toward token overlap as the
// shorter input grows, because word order and word choice carry more signal
// than spelling once a title has several words. Scores land in [0,1] and
// the function is symmetric in its arguments.
package similarity
