//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	"github.com/rios0rios0/lockdiff/internal/infrastructure/controllers"
	"github.com/rios0rios0/lockdiff/test/domain/commanddoubles"
)

// newCommand builds a Cobra command carrying the global flags, parses the
// given flags into it and captures its output.
func newCommand(t *testing.T, controller entities.Controller, flags ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	controllers.AddGlobalFlags(cmd)
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

// writeConfig writes a config file into a temporary directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".lockdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDiffController_GetBind(t *testing.T) {
	t.Parallel()

	t.Run("should accept at most two lockfile references", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewDiffController(&commanddoubles.StubDiffCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "diff [old] [new]", bind.Use)
		assert.NotEmpty(t, bind.Short)
		require.NotNil(t, bind.Args)
		assert.NoError(t, bind.Args(nil, []string{"a", "b"}))
		assert.Error(t, bind.Args(nil, []string{"a", "b", "c"}))
	})
}

func TestDiffController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass both refs and the config values to the command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(command)
		cfg := writeConfig(t, "format: yaml\nbase_revision: main\nlockfiles:\n  - yarn.lock\n")
		cmd, out := newCommand(t, controller, "--config", cfg)

		// when
		err := controller.Execute(cmd, []string{"main:yarn.lock", "yarn.lock"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "main:yarn.lock", command.LastOpts.OldRef)
		assert.Equal(t, "yarn.lock", command.LastOpts.NewRef)
		assert.Equal(t, entities.FormatYAML, command.LastOpts.Format)
		assert.Equal(t, "main", command.LastOpts.BaseRevision)
		assert.Equal(t, []string{"yarn.lock"}, command.LastOpts.Candidates)
		assert.Same(t, out, command.LastOpts.Output)
	})

	t.Run("should let explicit flags override the config file", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(command)
		cfg := writeConfig(t, "format: yaml\nbase_revision: main\n")
		cmd, _ := newCommand(t, controller, "--config", cfg, "-f", "json", "--base", "v1.2.0")

		// when
		err := controller.Execute(cmd, []string{"yarn.lock"})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.FormatJSON, command.LastOpts.Format)
		assert.Equal(t, "v1.2.0", command.LastOpts.BaseRevision)
		assert.Equal(t, "yarn.lock", command.LastOpts.OldRef)
		assert.Empty(t, command.LastOpts.NewRef)
	})

	t.Run("should fall back to defaults for an empty config file", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(command)
		cmd, _ := newCommand(t, controller, "--config", writeConfig(t, ""))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		defaults := entities.DefaultSettings()
		assert.Equal(t, defaults.Format, command.LastOpts.Format)
		assert.Equal(t, defaults.BaseRevision, command.LastOpts.BaseRevision)
		assert.Equal(t, defaults.Lockfiles, command.LastOpts.Candidates)
		assert.Empty(t, command.LastOpts.OldRef)
	})

	t.Run("should reject an unsupported format flag without running the command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(command)
		cmd, _ := newCommand(t, controller, "--config", writeConfig(t, ""), "--format", "xml")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
		assert.Zero(t, command.ExecuteCallCount)
	})

	t.Run("should fail when the config file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(command)
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		cmd, _ := newCommand(t, controller, "--config", missing)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Zero(t, command.ExecuteCallCount)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		expected := errors.New("boom")
		command := &commanddoubles.StubDiffCommand{ExecuteErr: expected}
		controller := controllers.NewDiffController(command)
		cmd, _ := newCommand(t, controller, "--config", writeConfig(t, ""))

		// when
		err := controller.Execute(cmd, []string{"a/yarn.lock", "b/yarn.lock"})

		// then
		assert.ErrorIs(t, err, expected)
	})
}
