package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lockdiff/internal/domain/commands"
	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// DepsController handles the "deps" subcommand.
type DepsController struct {
	command commands.Deps
}

// NewDepsController creates a new DepsController.
func NewDepsController(command commands.Deps) *DepsController {
	return &DepsController{command: command}
}

// GetBind returns the Cobra command metadata for the deps controller.
func (it *DepsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "deps [lockfile]",
		Short: "List the packages of one lockfile",
		Long: `Print every package of a lockfile with its installed versions,
as used for diffing. The lockfile is detected when omitted.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the deps-specific flags to the given Cobra command.
func (it *DepsController) AddFlags(_ *cobra.Command) {}

// Execute lists the dependencies of the referenced lockfile.
func (it *DepsController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := commands.DepsOptions{
		Format:     settings.Format,
		Candidates: settings.Lockfiles,
		Output:     cmd.OutOrStdout(),
	}
	if len(args) > 0 {
		opts.Ref = args[0]
	}

	return it.command.Execute(commandContext(cmd), opts)
}
