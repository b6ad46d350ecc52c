//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/lockdiff/internal"
	"github.com/rios0rios0/lockdiff/internal/infrastructure/controllers"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the app internal with every controller", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var app *internal.AppInternal
		err := container.Invoke(func(ai *internal.AppInternal) {
			app = ai
		})

		// then
		require.NoError(t, err)
		uses := make([]string, 0, len(app.GetControllers()))
		for _, controller := range app.GetControllers() {
			uses = append(uses, controller.GetBind().Use)
		}
		assert.Equal(t, []string{"diff [old] [new]", "deps [lockfile]"}, uses)
	})

	t.Run("should resolve the diff controller for the root command", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		err := container.Invoke(func(dc *controllers.DiffController) {
			assert.NotNil(t, dc)
		})

		// then
		require.NoError(t, err)
	})
}
