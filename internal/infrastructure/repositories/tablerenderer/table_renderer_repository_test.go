//go:build unit

package tablerenderer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	"github.com/rios0rios0/lockdiff/internal/infrastructure/repositories/tablerenderer"
)

func TestRendererRepository_RenderDiff(t *testing.T) {
	t.Parallel()

	t.Run("should report when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		renderer := tablerenderer.NewRendererRepository()
		diff := entities.ComputeDiff(entities.DependencyMap{}, entities.DependencyMap{})

		// when
		err := renderer.RenderDiff(&out, diff)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No lockfile changes detected")
	})

	t.Run("should render one section per kind of change", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		renderer := tablerenderer.NewRendererRepository()
		diff := entities.ComputeDiff(
			entities.DependencyMap{"left-pad": {"1.3.0"}, "react": {"17.0.2"}},
			entities.DependencyMap{"react": {"18.2.0"}, "zod": {"3.22.4"}},
		)

		// when
		err := renderer.RenderDiff(&out, diff)

		// then
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Added packages:")
		assert.Contains(t, output, "zod")
		assert.Contains(t, output, "3.22.4")
		assert.Contains(t, output, "Removed packages:")
		assert.Contains(t, output, "left-pad")
		assert.Contains(t, output, "Updated packages:")
		assert.Contains(t, output, "17.0.2")
		assert.Contains(t, output, "18.2.0")
		assert.Contains(t, output, "major")
	})

	t.Run("should omit empty sections", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		renderer := tablerenderer.NewRendererRepository()
		diff := entities.ComputeDiff(
			entities.DependencyMap{"foo": {"1.0.0"}},
			entities.DependencyMap{"foo": {"1.0.0", "1.1.0"}},
		)

		// when
		err := renderer.RenderDiff(&out, diff)

		// then
		require.NoError(t, err)
		output := out.String()
		assert.NotContains(t, output, "Added packages:")
		assert.NotContains(t, output, "Removed packages:")
		assert.Contains(t, output, "Updated packages:")
		assert.Contains(t, output, "1.0.0, 1.1.0")
		assert.Contains(t, output, "changed")
	})
}

func TestRendererRepository_RenderDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should list every package with its versions", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		renderer := tablerenderer.NewRendererRepository()
		deps := entities.DependencyMap{"lodash": {"4.17.20", "4.17.21"}, "chalk": {"5.3.0"}}

		// when
		err := renderer.RenderDependencies(&out, deps)

		// then
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "2 packages")
		assert.Contains(t, output, "4.17.20, 4.17.21")
		assert.Less(t, bytes.Index(out.Bytes(), []byte("chalk")), bytes.Index(out.Bytes(), []byte("lodash")))
	})

	t.Run("should report an empty map", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		renderer := tablerenderer.NewRendererRepository()

		// when
		err := renderer.RenderDependencies(&out, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "No dependencies found\n", out.String())
	})
}
