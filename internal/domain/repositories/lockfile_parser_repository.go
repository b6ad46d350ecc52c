package repositories

import (
	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

// LockfileParserRepository reduces one lockfile format to the canonical
// dependency map.
type LockfileParserRepository interface {
	// Kind returns the lockfile format this parser understands.
	Kind() entities.LockfileKind

	// Parse converts raw lockfile bytes. A nil map with a nil error means the
	// content was readable but is not a supported lockfile (wrong version,
	// empty, no dependency blocks). Errors are reserved for content that
	// cannot be read at all, such as syntactically invalid JSON.
	Parse(content []byte) (entities.DependencyMap, error)
}
