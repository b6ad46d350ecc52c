package repositories

import (
	"errors"
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/lockdiff/internal/domain/repositories"
)

// ErrUnknownFormat is returned when no renderer is registered for a format.
var ErrUnknownFormat = errors.New("unknown output format")

// RendererRegistry manages the output renderers by format name.
type RendererRegistry struct {
	renderers map[string]domainRepos.RendererRepository
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.RendererRepository),
	}
}

// Register adds a renderer under its format.
func (r *RendererRegistry) Register(renderer domainRepos.RendererRepository) {
	r.renderers[renderer.Format()] = renderer
}

// Get returns the renderer for the given format.
func (r *RendererRegistry) Get(format string) (domainRepos.RendererRepository, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownFormat, format, r.Formats())
	}
	return renderer, nil
}

// Formats returns the registered format names, sorted.
func (r *RendererRegistry) Formats() []string {
	formats := make([]string, 0, len(r.renderers))
	for format := range r.renderers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
