package tree

import "strings"

// IgnoreSet holds file names that are left out of the listing.
// Names are compared without regard to case.
type IgnoreSet struct {
	names map[string]struct{}
}

// NewIgnoreSet builds an IgnoreSet from the provided names. Empty names are skipped.
func NewIgnoreSet(names ...string) IgnoreSet {
	ignoreSet := IgnoreSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		ignoreSet.names[foldName(name)] = struct{}{}
	}
	return ignoreSet
}

// Contains reports whether name is in the set.
func (ignoreSet IgnoreSet) Contains(name string) bool {
	_, exists := ignoreSet.names[foldName(name)]
	return exists
}

func foldName(name string) string {
	return strings.ToUpper(name)
}
