package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewCheckoutCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDispatchCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSearchCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CheckoutCommand) Checkout {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DispatchCommand) Dispatch {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SearchCommand) Search {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
