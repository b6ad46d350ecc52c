package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

const sourceName = "filesystem"

// SourceRepository reads lockfiles from the working tree.
type SourceRepository struct{}

// NewSourceRepository creates a new working tree lockfile source.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

func (it *SourceRepository) Name() string { return sourceName }

// Supports returns true for references without a revision.
func (it *SourceRepository) Supports(ref entities.LockfileRef) bool {
	return !ref.IsRevision()
}

// Read returns the file content.
func (it *SourceRepository) Read(_ context.Context, ref entities.LockfileRef) ([]byte, error) {
	content, err := os.ReadFile(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot read lockfile %s: %w", ref, err)
	}
	return content, nil
}
