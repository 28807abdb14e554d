//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/resorepo/internal/domain/commands"
)

// StubCheckoutCommand is a stub implementation of commands.Checkout.
type StubCheckoutCommand struct {
	ExecuteCallCount int
	Path             string
	ExecuteErr       error
	LastOpts         commands.CheckoutOptions
}

var _ commands.Checkout = (*StubCheckoutCommand)(nil)

func (s *StubCheckoutCommand) Execute(
	_ context.Context,
	opts commands.CheckoutOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return "", s.ExecuteErr
	}
	return s.Path, nil
}
