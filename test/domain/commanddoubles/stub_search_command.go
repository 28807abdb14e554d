//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/resorepo/internal/domain/commands"
)

// StubSearchCommand is a stub implementation of commands.Search.
type StubSearchCommand struct {
	ExecuteCallCount int
	ExitCode         int
	ExecuteErr       error
	LastOpts         commands.SearchOptions
}

var _ commands.Search = (*StubSearchCommand)(nil)

func (s *StubSearchCommand) Execute(
	_ context.Context,
	opts commands.SearchOptions,
) (int, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExitCode, s.ExecuteErr
}
