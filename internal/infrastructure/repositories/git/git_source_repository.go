package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

const sourceName = "git"

// SourceRepository reads lockfiles as they were committed in a git
// revision. The path of a reference is relative to the current directory,
// like `git show REV:./path`.
type SourceRepository struct{}

// NewSourceRepository creates a new git revision lockfile source.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

func (it *SourceRepository) Name() string { return sourceName }

// Supports returns true for references that carry a revision.
func (it *SourceRepository) Supports(ref entities.LockfileRef) bool {
	return ref.IsRevision()
}

// Read resolves the revision in the repository enclosing the lockfile path
// and returns the blob content at that path.
func (it *SourceRepository) Read(ctx context.Context, ref entities.LockfileRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(filepath.FromSlash(ref.Path))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", ref.Path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(absPath), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open git repository for %s: %w", ref, err)
	}

	treePath, err := repositoryPath(repo, absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot locate %s in the repository: %w", ref, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref.Revision))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve revision %q: %w", ref.Revision, err)
	}
	logger.Debugf("[git] %s resolved to %s", ref.Revision, hash)

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("cannot load commit %s: %w", hash, err)
	}

	file, err := commit.File(treePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read lockfile %s: %w", ref, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("cannot read lockfile %s: %w", ref, err)
	}

	return []byte(contents), nil
}

// repositoryPath converts an absolute path into the slash separated path
// used inside the repository tree.
func repositoryPath(repo *gogit.Repository, absPath string) (string, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return "", err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(absPath))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, filepath.Join(dir, filepath.Base(absPath)))
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside of %s", absPath, root)
	}
	return filepath.ToSlash(rel), nil
}
