package catalog

// IDPair is an unordered pair of album ids stored in sorted order. Building
// the pair through NewIDPair guarantees (a,b) and (b,a) produce the same
// value, so map lookups cover both orderings.
type IDPair struct {
	Low  string
	High string
}

// NewIDPair returns the sorted pair for two ids.
func NewIDPair(a, b string) IDPair {
	if b < a {
		a, b = b, a
	}
	return IDPair{Low: a, High: b}
}

// Mentions reports whether either side of the pair is id.
func (p IDPair) Mentions(id string) bool {
	return p.Low == id || p.High == id
}

// ExclusionSet is a snapshot of human-confirmed distinct-album pairs. The
// set is a value loaded once per operation; freshness policy belongs to the
// caller.
type ExclusionSet map[IDPair]struct{}

// NewExclusionSet builds a set from the given pairs.
func NewExclusionSet(pairs ...IDPair) ExclusionSet {
	set := make(ExclusionSet, len(pairs))
	for _, pair := range pairs {
		set[pair] = struct{}{}
	}
	return set
}

// Add records a pair in the set.
func (s ExclusionSet) Add(a, b string) {
	s[NewIDPair(a, b)] = struct{}{}
}

// Contains reports whether the two ids are excluded, in either ordering.
func (s ExclusionSet) Contains(a, b string) bool {
	if s == nil {
		return false
	}
	_, ok := s[NewIDPair(a, b)]
	return ok
}
