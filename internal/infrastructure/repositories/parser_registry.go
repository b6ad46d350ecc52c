package repositories

import (
	"errors"
	"fmt"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	domainRepos "github.com/rios0rios0/lockdiff/internal/domain/repositories"
)

// ErrUnsupportedLockfile is returned when no parser handles a lockfile kind.
var ErrUnsupportedLockfile = errors.New(
	"unsupported lockfile type, supports " + entities.NpmLockfileName + " or " + entities.YarnLockfileName,
)

// ParserRegistry manages all registered lockfile parsers.
type ParserRegistry struct {
	parsers map[entities.LockfileKind]domainRepos.LockfileParserRepository
}

// NewParserRegistry creates an empty parser registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{
		parsers: make(map[entities.LockfileKind]domainRepos.LockfileParserRepository),
	}
}

// Register adds a parser under its lockfile kind.
func (r *ParserRegistry) Register(p domainRepos.LockfileParserRepository) {
	r.parsers[p.Kind()] = p
}

// Get returns the parser for the given kind.
func (r *ParserRegistry) Get(kind entities.LockfileKind) (domainRepos.LockfileParserRepository, error) {
	p, ok := r.parsers[kind]
	if !ok {
		return nil, fmt.Errorf("%w (got %q)", ErrUnsupportedLockfile, kind)
	}
	return p, nil
}
