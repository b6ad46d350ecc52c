package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	domainRepos "github.com/rios0rios0/lockdiff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/lockdiff/internal/infrastructure/repositories"
)

var (
	// ErrNoLockfileDetected is returned when no ref is given and none of the
	// candidate lockfiles exists.
	ErrNoLockfileDetected = errors.New(
		"no lockfile detected, provide a path or ensure package-lock.json/yarn.lock exists",
	)

	// ErrUnparseableLockfile is returned when a parser does not recognize
	// the content of a lockfile.
	ErrUnparseableLockfile = errors.New("failed to parse lockfile(s), check format/version")
)

// lockfileLoader reads a lockfile through the matching source and parser.
type lockfileLoader struct {
	sources *infraRepos.SourceRegistry
	parsers *infraRepos.ParserRegistry
}

// parserFor picks the parser from the file name of the reference.
func (l lockfileLoader) parserFor(ref entities.LockfileRef) (domainRepos.LockfileParserRepository, error) {
	return l.parsers.Get(ref.Kind())
}

func (l lockfileLoader) load(
	ctx context.Context,
	ref entities.LockfileRef,
	parser domainRepos.LockfileParserRepository,
) (entities.DependencyMap, error) {
	source, err := l.sources.Resolve(ref)
	if err != nil {
		return nil, err
	}

	logger.Debugf("[%s] Reading %s", source.Name(), ref)
	content, err := source.Read(ctx, ref)
	if err != nil {
		return nil, err
	}

	deps, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ref, err)
	}
	if deps == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnparseableLockfile, ref)
	}

	logger.Debugf("Parsed %d packages from %s", len(deps), ref)
	return deps, nil
}

// detectLockfile returns the first candidate that exists in workDir.
func detectLockfile(workDir string, candidates []string) (string, error) {
	for _, candidate := range candidates {
		path := filepath.Join(workDir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNoLockfileDetected
}
