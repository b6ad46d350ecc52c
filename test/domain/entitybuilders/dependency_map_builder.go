//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"
	"slices"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyMapBuilder helps create canonical dependency maps with a fluent interface.
type DependencyMapBuilder struct {
	*testkit.BaseBuilder
	packages map[string][]string
}

// NewDependencyMapBuilder creates a new builder holding no package.
func NewDependencyMapBuilder() *DependencyMapBuilder {
	return &DependencyMapBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		packages:    map[string][]string{},
	}
}

// WithPackage adds versions for a package, keeping the canonical rules.
func (b *DependencyMapBuilder) WithPackage(name string, versions ...string) *DependencyMapBuilder {
	for _, version := range versions {
		if !slices.Contains(b.packages[name], version) {
			b.packages[name] = append(b.packages[name], version)
		}
	}
	return b
}

// WithoutPackage removes a package.
func (b *DependencyMapBuilder) WithoutPackage(name string) *DependencyMapBuilder {
	delete(b.packages, name)
	return b
}

// Build creates the map (satisfies testkit.Builder interface).
func (b *DependencyMapBuilder) Build() interface{} {
	return b.BuildDependencyMap()
}

// BuildDependencyMap creates the map with a concrete return type.
func (b *DependencyMapBuilder) BuildDependencyMap() entities.DependencyMap {
	deps := entities.DependencyMap{}
	for name, versions := range b.packages {
		deps[name] = slices.Clone(versions)
	}
	deps.SortVersions()
	return deps
}

// BuildYarnLock renders the packages as yarn.lock text, one block per version.
func (b *DependencyMapBuilder) BuildYarnLock() string {
	deps := b.BuildDependencyMap()
	content := "# yarn lockfile v1\n"
	for _, name := range deps.Names() {
		for _, version := range deps[name] {
			content += "\n" + name + "@" + version + ":\n  version \"" + version + "\"\n"
		}
	}
	return content
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyMapBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.packages = map[string][]string{}
	return b
}

// Clone creates a deep copy of the DependencyMapBuilder.
func (b *DependencyMapBuilder) Clone() testkit.Builder {
	packages := maps.Clone(b.packages)
	for name, versions := range packages {
		packages[name] = slices.Clone(versions)
	}
	return &DependencyMapBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		packages:    packages,
	}
}
