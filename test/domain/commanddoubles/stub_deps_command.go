//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/lockdiff/internal/domain/commands"
)

// StubDepsCommand is a stub implementation of commands.Deps.
type StubDepsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.DepsOptions
}

var _ commands.Deps = (*StubDepsCommand)(nil)

func (s *StubDepsCommand) Execute(
	_ context.Context,
	opts commands.DepsOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
