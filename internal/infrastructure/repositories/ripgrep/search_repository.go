package ripgrep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

// DefaultBinary is the search tool run when no other binary is configured.
const DefaultBinary = "rg"

// SearchRepository implements repositories.SearchRepository by running a
// search binary as a child process that inherits the standard streams.
type SearchRepository struct {
	binary string
}

// NewSearchRepository creates a SearchRepository running ripgrep.
func NewSearchRepository() repositories.SearchRepository {
	return NewSearchRepositoryWithBinary(DefaultBinary)
}

// NewSearchRepositoryWithBinary creates a SearchRepository running the given binary.
func NewSearchRepositoryWithBinary(binary string) *SearchRepository {
	return &SearchRepository{binary: binary}
}

func (r *SearchRepository) Name() string { return r.binary }

// Run executes the binary and waits for it. Its exit code is returned as-is;
// an error is only returned when the process could not be started.
func (r *SearchRepository) Run(ctx context.Context, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return entities.ExitSearchToolUnavailable, fmt.Errorf(
			"%w: %s: %w", entities.ErrSearchToolUnavailable, r.binary, err,
		)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() < 0 {
				// terminated by a signal
				return entities.ExitFailure, nil
			}
			return exitErr.ExitCode(), nil
		}
		return entities.ExitFailure, fmt.Errorf("%s did not complete: %w", r.binary, err)
	}
	return entities.ExitSuccess, nil
}
