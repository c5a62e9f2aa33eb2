package docxdocs

// TagSet is a set of doc-tag names used to exclude components and props.
type TagSet map[string]struct{}

// NewTagSet builds a set from names. Matching is exact and case-sensitive.
func NewTagSet(names []string) TagSet {
	set := make(TagSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// IsExcluded reports whether any tag's name is in the set. Tag text is
// never consulted.
func IsExcluded(tags []DocsTag, set TagSet) bool {
	if len(set) == 0 {
		return false
	}
	for _, t := range tags {
		if set.Has(t.Name) {
			return true
		}
	}
	return false
}
