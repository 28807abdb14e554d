//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

// SpySearchRepository implements repositories.SearchRepository as a configurable spy.
type SpySearchRepository struct {
	ExitCode int
	RunErr   error
	RunCalls [][]string
}

var _ repositories.SearchRepository = (*SpySearchRepository)(nil)

func (s *SpySearchRepository) Name() string { return "spy-search" }

func (s *SpySearchRepository) Run(_ context.Context, args []string) (int, error) {
	s.RunCalls = append(s.RunCalls, append([]string(nil), args...))
	if s.RunErr != nil {
		return 0, s.RunErr
	}
	return s.ExitCode, nil
}
