package repositories

import "context"

// SearchRepository abstracts the text-search tool run over a checkout.
type SearchRepository interface {
	// Name returns the executable name of the tool (e.g. "rg").
	Name() string

	// Run starts the tool with args, waits for it and returns its exit code.
	// An error (wrapping entities.ErrSearchToolUnavailable) means the tool never ran.
	Run(ctx context.Context, args []string) (int, error)
}
