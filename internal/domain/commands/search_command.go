package commands

import (
	"context"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// Search is the interface for a full invocation: checkout then dispatch.
type Search interface {
	Execute(ctx context.Context, opts SearchOptions) (int, error)
}

// SearchOptions holds the runtime options of one invocation.
type SearchOptions struct {
	Reference  string
	Branch     string
	CacheDir   string
	Host       entities.Host
	SearchArgs []string
}

// SearchCommand validates the search arguments, prepares the checkout and
// dispatches the search tool over it. The returned code is the process exit code.
type SearchCommand struct {
	checkout Checkout
	dispatch Dispatch
}

// NewSearchCommand creates a new SearchCommand.
func NewSearchCommand(checkout Checkout, dispatch Dispatch) *SearchCommand {
	return &SearchCommand{
		checkout: checkout,
		dispatch: dispatch,
	}
}

// Execute runs the invocation. Fatal errors abort before the search tool runs.
func (it *SearchCommand) Execute(ctx context.Context, opts SearchOptions) (int, error) {
	// rejected before any clone work
	if err := validateSearchArgs(opts.SearchArgs); err != nil {
		return entities.ExitCode(err), err
	}

	path, err := it.checkout.Execute(ctx, CheckoutOptions{
		Reference: opts.Reference,
		Branch:    opts.Branch,
		CacheDir:  opts.CacheDir,
		Host:      opts.Host,
	})
	if err != nil {
		return entities.ExitCode(err), err
	}

	return it.dispatch.Execute(ctx, opts.SearchArgs, path)
}
