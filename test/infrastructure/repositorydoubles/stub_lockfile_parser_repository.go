//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	"github.com/rios0rios0/lockdiff/internal/domain/repositories"
)

// StubLockfileParserRepository implements repositories.LockfileParserRepository
// by returning canned results keyed by the raw content.
type StubLockfileParserRepository struct {
	ParserKind entities.LockfileKind
	Results    map[string]entities.DependencyMap
	ParseErr   error
	ParseCalls int
}

var _ repositories.LockfileParserRepository = (*StubLockfileParserRepository)(nil)

func (p *StubLockfileParserRepository) Kind() entities.LockfileKind { return p.ParserKind }

func (p *StubLockfileParserRepository) Parse(content []byte) (entities.DependencyMap, error) {
	p.ParseCalls++
	if p.ParseErr != nil {
		return nil, p.ParseErr
	}
	return p.Results[string(content)], nil
}
