// Package dedupe ranks albums that probably describe the same real-world
// release.
//
// A pairing only counts when both the artist and the title clear a floor on
// their own: a perfect title with an unrelated artist (or the reverse) is
// vetoed outright, which is what keeps "same artist, different album" out
// of the candidate list. Human-confirmed exclusion pairs are honored in
// both id orderings.
package dedupe
