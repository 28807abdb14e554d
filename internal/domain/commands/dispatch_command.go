package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

// Dispatch is the interface for the dispatch command.
type Dispatch interface {
	Execute(ctx context.Context, toolArgs []string, targetPath string) (int, error)
}

// DispatchCommand runs the search tool over a checkout and mirrors its exit code.
type DispatchCommand struct {
	search repositories.SearchRepository
}

// NewDispatchCommand creates a new DispatchCommand.
func NewDispatchCommand(search repositories.SearchRepository) *DispatchCommand {
	return &DispatchCommand{search: search}
}

// Execute appends targetPath to toolArgs and runs the search tool with them.
// A non-zero exit of the tool is logged as a warning and returned without an error.
func (it *DispatchCommand) Execute(ctx context.Context, toolArgs []string, targetPath string) (int, error) {
	if err := validateSearchArgs(toolArgs); err != nil {
		return entities.ExitCode(err), err
	}

	args := make([]string, 0, len(toolArgs)+1)
	args = append(args, toolArgs...)
	args = append(args, targetPath)

	logger.Debugf("Running %s %v", it.search.Name(), args)
	code, err := it.search.Run(ctx, args)
	if err != nil {
		return entities.ExitCode(err), err
	}
	if code != entities.ExitSuccess {
		logger.Warnf("%s exited with code %d", it.search.Name(), code)
	}
	return code, nil
}

func validateSearchArgs(toolArgs []string) error {
	if len(toolArgs) == 0 {
		return entities.ErrNoSearchArgs
	}
	return nil
}
