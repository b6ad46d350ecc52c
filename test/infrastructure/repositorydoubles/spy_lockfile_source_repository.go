//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
	"github.com/rios0rios0/lockdiff/internal/domain/repositories"
)

// SpyLockfileSourceRepository implements repositories.LockfileSourceRepository
// over an in-memory set of files keyed by reference string.
type SpyLockfileSourceRepository struct {
	// --- identity ---
	SourceName string

	// --- Supports ---
	// When nil, every reference is supported.
	SupportsFunc func(ref entities.LockfileRef) bool

	// --- Read ---
	Files    map[string]string
	ReadErr  error
	ReadRefs []entities.LockfileRef
}

var _ repositories.LockfileSourceRepository = (*SpyLockfileSourceRepository)(nil)

func (s *SpyLockfileSourceRepository) Name() string { return s.SourceName }

func (s *SpyLockfileSourceRepository) Supports(ref entities.LockfileRef) bool {
	if s.SupportsFunc == nil {
		return true
	}
	return s.SupportsFunc(ref)
}

func (s *SpyLockfileSourceRepository) Read(
	_ context.Context,
	ref entities.LockfileRef,
) ([]byte, error) {
	s.ReadRefs = append(s.ReadRefs, ref)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	content, ok := s.Files[ref.String()]
	if !ok {
		return nil, fmt.Errorf("cannot read lockfile %s: file not found", ref)
	}
	return []byte(content), nil
}
