package jsonrenderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// RendererRepository writes results as indented JSON. The diff keeps the
// {added, removed, updated} shape so that scripts can rely on it.
type RendererRepository struct{}

// NewRendererRepository creates a new JSON renderer.
func NewRendererRepository() *RendererRepository {
	return &RendererRepository{}
}

func (it *RendererRepository) Format() string { return entities.FormatJSON }

func (it *RendererRepository) RenderDiff(w io.Writer, diff entities.LockDiff) error {
	return encode(w, diff)
}

func (it *RendererRepository) RenderDependencies(w io.Writer, deps entities.DependencyMap) error {
	if deps == nil {
		deps = entities.DependencyMap{}
	}
	return encode(w, deps)
}

func encode(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
