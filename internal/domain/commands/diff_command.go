package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	infraRepos "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories"
)

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, opts DiffOptions) error
}

// DiffOptions holds runtime options for a single diff.
type DiffOptions struct {
	OldRef       string   // Old lockfile reference, may be empty
	NewRef       string   // New lockfile reference, may be empty
	Format       string   // Output format
	BaseRevision string   // Revision used for omitted references
	Candidates   []string // Lockfile names tried when no reference is given
	WorkDir      string   // Directory searched for candidates
	Output       io.Writer
}

// DiffCommand compares two lockfile snapshots:
// resolve references -> read -> parse -> diff -> render.
type DiffCommand struct {
	loader    lockfileLoader
	renderers *infraRepos.RendererRegistry
}

// NewDiffCommand creates a new DiffCommand with the given registries.
func NewDiffCommand(
	sourceRegistry *infraRepos.SourceRegistry,
	parserRegistry *infraRepos.ParserRegistry,
	rendererRegistry *infraRepos.RendererRegistry,
) *DiffCommand {
	return &DiffCommand{
		loader:    lockfileLoader{sources: sourceRegistry, parsers: parserRegistry},
		renderers: rendererRegistry,
	}
}

// Execute runs the diff and writes the result to opts.Output.
func (it *DiffCommand) Execute(ctx context.Context, opts DiffOptions) error {
	renderer, err := it.renderers.Get(opts.Format)
	if err != nil {
		return err
	}

	oldRef, newRef, err := resolveRefs(opts)
	if err != nil {
		return err
	}
	logger.Infof("Comparing %s -> %s", oldRef, newRef)

	// the new side decides the lockfile format
	parser, err := it.loader.parserFor(newRef)
	if err != nil {
		return err
	}

	oldDeps, err := it.loader.load(ctx, oldRef, parser)
	if err != nil {
		return err
	}
	newDeps, err := it.loader.load(ctx, newRef, parser)
	if err != nil {
		return err
	}

	diff := entities.ComputeDiff(oldDeps, newDeps)
	logger.Infof("Lockfile diff: %s", diff.Summary())

	if renderErr := renderer.RenderDiff(opts.Output, diff); renderErr != nil {
		return fmt.Errorf("failed to render diff: %w", renderErr)
	}
	return nil
}

// resolveRefs fills omitted references. With no reference the detected
// lockfile is compared against itself at the base revision; with a single
// reference, that reference is compared against its base revision.
func resolveRefs(opts DiffOptions) (entities.LockfileRef, entities.LockfileRef, error) {
	if opts.NewRef != "" {
		return entities.ParseLockfileRef(opts.OldRef), entities.ParseLockfileRef(opts.NewRef), nil
	}

	newInput := opts.OldRef
	if newInput == "" {
		detected, err := detectLockfile(opts.WorkDir, opts.Candidates)
		if err != nil {
			return entities.LockfileRef{}, entities.LockfileRef{}, err
		}
		logger.Infof("Detected lockfile: %s", detected)
		newInput = detected
	}

	newRef := entities.ParseLockfileRef(newInput)
	return newRef.WithRevision(opts.BaseRevision), newRef, nil
}
