package yamlrenderer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

const indent = 2

// RendererRepository writes results as YAML using the same keys as the JSON
// output.
type RendererRepository struct{}

// NewRendererRepository creates a new YAML renderer.
func NewRendererRepository() *RendererRepository {
	return &RendererRepository{}
}

func (it *RendererRepository) Format() string { return entities.FormatYAML }

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
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(indent)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
