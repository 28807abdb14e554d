//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/resorepo/internal/domain/commands"
)

// StubDispatchCommand is a stub implementation of commands.Dispatch.
type StubDispatchCommand struct {
	ExecuteCallCount int
	ExitCode         int
	ExecuteErr       error
	LastArgs         []string
	LastTarget       string
}

var _ commands.Dispatch = (*StubDispatchCommand)(nil)

func (s *StubDispatchCommand) Execute(
	_ context.Context,
	toolArgs []string,
	targetPath string,
) (int, error) {
	s.ExecuteCallCount++
	s.LastArgs = toolArgs
	s.LastTarget = targetPath
	return s.ExitCode, s.ExecuteErr
}
