package entities

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DependencyMap is the canonical form every lockfile is reduced to: a package
// name mapped to the versions installed for it. Version lists hold no
// duplicates and are kept in ascending string order.
type DependencyMap map[string][]string

// Add records version for name unless the exact string is already present.
// Two semver-equal but differently spelled versions are kept apart.
func (m DependencyMap) Add(name, version string) {
	if slices.Contains(m[name], version) {
		return
	}
	m[name] = append(m[name], version)
}

// SortVersions orders every version list by plain string comparison.
// This is lexical order, so "4.17.20" sorts before "4.17.9".
func (m DependencyMap) SortVersions() {
	for _, versions := range m {
		slices.Sort(versions)
	}
}

// Names returns the package names in display order.
func (m DependencyMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	order := newNameOrder()
	slices.SortFunc(names, order.compare)
	return names
}

// nameOrder compares package names with the root locale collation, falling
// back to byte order so that the result is a total order.
type nameOrder struct {
	collator *collate.Collator
}

func newNameOrder() *nameOrder {
	return &nameOrder{collator: collate.New(language.Und)}
}

func (o *nameOrder) compare(a, b string) int {
	if result := o.collator.CompareString(a, b); result != 0 {
		return result
	}
	return strings.Compare(a, b)
}
