package repositories

import (
	"io"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// RendererRepository writes results in one output format.
type RendererRepository interface {
	Format() string
	RenderDiff(w io.Writer, diff entities.LockDiff) error
	RenderDependencies(w io.Writer, deps entities.DependencyMap) error
}
