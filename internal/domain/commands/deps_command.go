package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	infraRepos "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories"
)

// Deps is the interface for the deps command.
type Deps interface {
	Execute(ctx context.Context, opts DepsOptions) error
}

// DepsOptions holds runtime options for listing a lockfile's dependencies.
type DepsOptions struct {
	Ref        string   // Lockfile reference, detected when empty
	Format     string   // Output format
	Candidates []string // Lockfile names tried when Ref is empty
	WorkDir    string   // Directory searched for candidates
	Output     io.Writer
}

// DepsCommand prints the canonical dependency map of one lockfile.
type DepsCommand struct {
	loader    lockfileLoader
	renderers *infraRepos.RendererRegistry
}

// NewDepsCommand creates a new DepsCommand with the given registries.
func NewDepsCommand(
	sourceRegistry *infraRepos.SourceRegistry,
	parserRegistry *infraRepos.ParserRegistry,
	rendererRegistry *infraRepos.RendererRegistry,
) *DepsCommand {
	return &DepsCommand{
		loader:    lockfileLoader{sources: sourceRegistry, parsers: parserRegistry},
		renderers: rendererRegistry,
	}
}

// Execute loads the lockfile and renders its dependency map.
func (it *DepsCommand) Execute(ctx context.Context, opts DepsOptions) error {
	renderer, err := it.renderers.Get(opts.Format)
	if err != nil {
		return err
	}

	input := opts.Ref
	if input == "" {
		input, err = detectLockfile(opts.WorkDir, opts.Candidates)
		if err != nil {
			return err
		}
	}
	ref := entities.ParseLockfileRef(input)

	parser, err := it.loader.parserFor(ref)
	if err != nil {
		return err
	}

	deps, err := it.loader.load(ctx, ref, parser)
	if err != nil {
		return err
	}
	logger.Infof("%s lists %d packages", ref, len(deps))

	if renderErr := renderer.RenderDependencies(opts.Output, deps); renderErr != nil {
		return fmt.Errorf("failed to render dependencies: %w", renderErr)
	}
	return nil
}
