package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lockdiff/internal"
	"github.com/rios0rios0/lockdiff/internal/infrastructure/controllers"
)

func buildRootCommand(diffController *controllers.DiffController) *cobra.Command {
	bind := diffController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "lockdiff [old] [new]",
		Short: "Semantic diff for npm and yarn lockfiles",
		Long: `Parse package-lock.json (v3) and yarn.lock (v1) snapshots into one dependency
model and report which packages were added, removed or updated, labelling every
single-version update as a major, minor, patch or prerelease bump.

Usage modes:
  lockdiff                              Detected lockfile vs. HEAD~1
  lockdiff yarn.lock                    yarn.lock vs. BASE:yarn.lock
  lockdiff old/yarn.lock new/yarn.lock  Two files in the working tree
  lockdiff main:package-lock.json package-lock.json
  lockdiff deps yarn.lock               List the packages of one lockfile`,
		Args:          bind.Args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          diffController.Execute,
	}

	// Global persistent flags
	controllers.AddGlobalFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	diffController := injectDiffController()
	cobraRoot := buildRootCommand(diffController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'lockdiff': %s", err)
	}
}
