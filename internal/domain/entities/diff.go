package entities

import (
	"fmt"
	"slices"
)

// AddedRemoved is a package present on only one side of a diff.
type AddedRemoved struct {
	Name     string   `json:"name"     yaml:"name"`
	Versions []string `json:"versions" yaml:"versions"`
}

// Updated is a package present on both sides with a different version set.
type Updated struct {
	Name        string   `json:"name"        yaml:"name"`
	OldVersions []string `json:"oldVersions" yaml:"oldVersions"`
	NewVersions []string `json:"newVersions" yaml:"newVersions"`
	Bump        Bump     `json:"bump"        yaml:"bump"`
}

// LockDiff is the structured difference between two dependency maps.
// Packages whose version sets are equal on both sides appear in none of the
// lists. Each list is ordered by package name.
type LockDiff struct {
	Added   []AddedRemoved `json:"added"   yaml:"added"`
	Removed []AddedRemoved `json:"removed" yaml:"removed"`
	Updated []Updated      `json:"updated" yaml:"updated"`
}

// IsEmpty reports whether the diff carries no change at all.
func (d LockDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Updated) == 0
}

// Summary returns a one-line count of the changes.
func (d LockDiff) Summary() string {
	return fmt.Sprintf(
		"%d added, %d removed, %d updated",
		len(d.Added), len(d.Removed), len(d.Updated),
	)
}

// ComputeDiff reconciles the old and new dependency maps. Either map may be
// nil or empty.
func ComputeDiff(oldDeps, newDeps DependencyMap) LockDiff {
	diff := LockDiff{
		Added:   []AddedRemoved{},
		Removed: []AddedRemoved{},
		Updated: []Updated{},
	}

	for _, name := range unionNames(oldDeps, newDeps) {
		oldVersions := oldDeps[name]
		newVersions := newDeps[name]

		switch {
		case len(oldVersions) == 0 && len(newVersions) == 0:
			continue
		case len(oldVersions) == 0:
			diff.Added = append(diff.Added, AddedRemoved{
				Name:     name,
				Versions: slices.Clone(newVersions),
			})
		case len(newVersions) == 0:
			diff.Removed = append(diff.Removed, AddedRemoved{
				Name:     name,
				Versions: slices.Clone(oldVersions),
			})
		case !sameVersionSet(oldVersions, newVersions):
			diff.Updated = append(diff.Updated, Updated{
				Name:        name,
				OldVersions: slices.Clone(oldVersions),
				NewVersions: slices.Clone(newVersions),
				Bump:        ClassifyBump(oldVersions, newVersions),
			})
		}
	}

	order := newNameOrder()
	slices.SortFunc(diff.Added, func(a, b AddedRemoved) int { return order.compare(a.Name, b.Name) })
	slices.SortFunc(diff.Removed, func(a, b AddedRemoved) int { return order.compare(a.Name, b.Name) })
	slices.SortFunc(diff.Updated, func(a, b Updated) int { return order.compare(a.Name, b.Name) })

	return diff
}

func unionNames(oldDeps, newDeps DependencyMap) []string {
	seen := make(map[string]struct{}, len(oldDeps)+len(newDeps))
	names := make([]string, 0, len(oldDeps)+len(newDeps))
	for _, deps := range []DependencyMap{oldDeps, newDeps} {
		for name := range deps {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// sameVersionSet compares two version lists ignoring their order.
func sameVersionSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sortedA := slices.Clone(a)
	sortedB := slices.Clone(b)
	slices.Sort(sortedA)
	slices.Sort(sortedB)
	return slices.Equal(sortedA, sortedB)
}
