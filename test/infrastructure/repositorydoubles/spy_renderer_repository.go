//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	"github.com/rios0rios0/lockdiff/internal/domain/repositories"
)

// SpyRendererRepository implements repositories.RendererRepository and
// records what it was asked to render.
type SpyRendererRepository struct {
	RendererFormat string
	RenderErr      error

	RenderedDiffs []entities.LockDiff
	RenderedDeps  []entities.DependencyMap
}

var _ repositories.RendererRepository = (*SpyRendererRepository)(nil)

func (r *SpyRendererRepository) Format() string { return r.RendererFormat }

func (r *SpyRendererRepository) RenderDiff(_ io.Writer, diff entities.LockDiff) error {
	r.RenderedDiffs = append(r.RenderedDiffs, diff)
	return r.RenderErr
}

func (r *SpyRendererRepository) RenderDependencies(_ io.Writer, deps entities.DependencyMap) error {
	r.RenderedDeps = append(r.RenderedDeps, deps)
	return r.RenderErr
}
