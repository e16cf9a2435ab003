package domain

// Duplicates maps a canonical flake URI to the input names recorded as
// duplicates of it. Every present key has at least one name.
type Duplicates map[string][]string

// FindDuplicates groups input names by shared canonical URI. The first name
// encountered for a URI only marks it as seen; second and later names are
// recorded under that URI. Which name counts as first follows map iteration
// order, so callers must not rely on a particular member being excluded,
// only on group sizes and the key set.
func FindDuplicates(inputs map[string]string) Duplicates {
	seen := make(map[string]struct{}, len(inputs))
	duplicates := make(Duplicates)

	for name, uri := range inputs {
		if _, ok := seen[uri]; ok {
			duplicates[uri] = append(duplicates[uri], name)
			continue
		}
		seen[uri] = struct{}{}
	}

	return duplicates
}

// Without returns a copy of d with every group whose URI is on the ignore
// list removed. A nil ignore list leaves d unchanged.
func (d Duplicates) Without(ignores *IgnoreList) Duplicates {
	if ignores == nil || ignores.Empty() {
		return d
	}

	kept := make(Duplicates, len(d))
	for uri, names := range d {
		if ignores.Ignored(uri) {
			continue
		}
		kept[uri] = names
	}
	return kept
}

// IgnoreList is a set of canonical URIs excluded from duplicate reporting.
type IgnoreList struct {
	uris map[string]struct{}
}

// NewIgnoreList builds an IgnoreList from canonical URIs.
func NewIgnoreList(uris []string) *IgnoreList {
	set := make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		set[uri] = struct{}{}
	}
	return &IgnoreList{uris: set}
}

// Ignored reports whether the given canonical URI is on the list.
func (l *IgnoreList) Ignored(uri string) bool {
	if l == nil {
		return false
	}
	_, ok := l.uris[uri]
	return ok
}

// Empty reports whether the list contains no URIs.
func (l *IgnoreList) Empty() bool {
	return l == nil || len(l.uris) == 0
}
