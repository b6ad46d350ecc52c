package repositories

import (
	"context"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// LockfileSourceRepository reads lockfile content from a storage backend
// (the working tree, a git revision).
type LockfileSourceRepository interface {
	// Name returns the source identifier (e.g. "filesystem", "git").
	Name() string

	// Supports returns true if this source can resolve the given reference.
	Supports(ref entities.LockfileRef) bool

	// Read returns the raw content of the referenced lockfile.
	Read(ctx context.Context, ref entities.LockfileRef) ([]byte, error)
}
