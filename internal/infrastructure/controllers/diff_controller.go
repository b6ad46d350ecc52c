package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lockdiff/internal/domain/commands"
	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// DiffController handles the root command and the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff [old] [new]",
		Short: "Diff two lockfile snapshots",
		Long: `Compare two lockfiles and list the added, removed and updated packages.

A lockfile reference is either a path in the working tree or REVISION:PATH
to read it from git history (e.g. HEAD~1:package-lock.json).

  lockdiff                      Detected lockfile vs. the same file at the base revision
  lockdiff yarn.lock            yarn.lock vs. BASE:yarn.lock
  lockdiff main:yarn.lock yarn.lock`,
		Args: cobra.MaximumNArgs(2), //nolint:mnd // old and new
	}
}

// AddFlags adds the diff-specific flags to the given Cobra command.
func (it *DiffController) AddFlags(_ *cobra.Command) {}

// Execute runs the diff with the settings resolved from config and flags.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := commands.DiffOptions{
		Format:       settings.Format,
		BaseRevision: settings.BaseRevision,
		Candidates:   settings.Lockfiles,
		Output:       cmd.OutOrStdout(),
	}
	if len(args) > 0 {
		opts.OldRef = args[0]
	}
	if len(args) > 1 {
		opts.NewRef = args[1]
	}

	return it.command.Execute(commandContext(cmd), opts)
}
