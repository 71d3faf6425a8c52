package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

// CommitController handles the "commit" subcommand.
type CommitController struct {
	command commands.Commit
}

// NewCommitController creates a new CommitController.
func NewCommitController(command commands.Commit) *CommitController {
	return &CommitController{command: command}
}

// GetBind returns the Cobra command metadata for the commit controller.
func (it *CommitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commit [dir]",
		Short: "Commit the working copy on its develop branch",
		Long: `Commit every change of a project on the develop/<version> branch matching its version.

The version is read from xx.json (or package.json). When it is already released
on the remote, you choose the next patch, minor or major version. The remote
repository is created and linked on the first run.

With --production the version is also tagged release/<version>, merged into
main and both are pushed.`,
	}
}

// AddFlags adds the commit-specific flags to the given Cobra command.
func (it *CommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("production", "p", false, "Tag the version and merge it into the main branch")
	addResetFlags(cmd)
}

// Execute runs the commit workflow on the given directory (default: current directory).
func (it *CommitController) Execute(cmd *cobra.Command, args []string) error {
	production, _ := cmd.Flags().GetBool("production")
	resets := readResetFlags(cmd)

	return it.command.Execute(cmd.Context(), commands.CommitOptions{
		Dir:         targetDir(args),
		Production:  production,
		ResetServer: resets.server,
		ResetToken:  resets.token,
		ResetOwner:  resets.owner,
	})
}
