package repositories

import (
	"fmt"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	domainRepos "github.com/rios0rios0/lockdiff/internal/domain/repositories"
)

// SourceRegistry manages the lockfile sources, consulted in registration order.
type SourceRegistry struct {
	sources []domainRepos.LockfileSourceRepository
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{}
}

// Register appends a source.
func (r *SourceRegistry) Register(s domainRepos.LockfileSourceRepository) {
	r.sources = append(r.sources, s)
}

// Resolve returns the first source able to read the reference.
func (r *SourceRegistry) Resolve(ref entities.LockfileRef) (domainRepos.LockfileSourceRepository, error) {
	for _, s := range r.sources {
		if s.Supports(ref) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no lockfile source can read %q", ref)
}

// Names returns the registered source names in order.
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.Name())
	}
	return names
}
