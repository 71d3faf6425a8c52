package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewConfigureCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSetupCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCommitCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ConfigureCommand) Configure {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SetupCommand) Setup {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CommitCommand) Commit {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
