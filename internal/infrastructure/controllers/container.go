package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewCommitController); err != nil {
		return err
	}
	if err := container.Provide(NewSetupController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	commitController *CommitController,
	setupController *SetupController,
) *[]entities.Controller {
	return &[]entities.Controller{
		commitController,
		setupController,
	}
}
