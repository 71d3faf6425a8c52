package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

// SetupController handles the "setup" subcommand.
type SetupController struct {
	command commands.Setup
}

// NewSetupController creates a new SetupController.
func NewSetupController(command commands.Setup) *SetupController {
	return &SetupController{command: command}
}

// GetBind returns the Cobra command metadata for the setup controller.
func (it *SetupController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "setup [dir]",
		Short: "Configure the hosting provider and link the remote repository",
		Long: `Ask for the hosting provider, access token and owner of a project,
create its remote repository when needed and add it as a git remote.
Nothing is committed.`,
	}
}

// AddFlags adds the setup-specific flags to the given Cobra command.
func (it *SetupController) AddFlags(cmd *cobra.Command) {
	addResetFlags(cmd)
}

// Execute configures and links the given directory (default: current directory).
func (it *SetupController) Execute(cmd *cobra.Command, args []string) error {
	resets := readResetFlags(cmd)

	return it.command.Execute(cmd.Context(), commands.SetupOptions{
		Dir:         targetDir(args),
		ResetServer: resets.server,
		ResetToken:  resets.token,
		ResetOwner:  resets.owner,
	})
}
