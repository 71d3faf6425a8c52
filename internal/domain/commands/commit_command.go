package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// Commit is the interface for the commit command.
type Commit interface {
	Execute(ctx context.Context, opts CommitOptions) error
}

// CommitOptions holds runtime options for the commit command.
type CommitOptions struct {
	Dir         string
	Production  bool
	ResetServer bool
	ResetToken  bool
	ResetOwner  bool
}

// CommitCommand validates the project version, makes sure the repository is
// configured and linked, then runs the commit workflow.
type CommitCommand struct {
	settings   *entities.Settings
	versions   repositories.VersionRepository
	configure  Configure
	gitFactory repositories.GitRepositoryFactory
	prompter   repositories.PromptRepository
}

// NewCommitCommand creates a new CommitCommand.
func NewCommitCommand(
	settings *entities.Settings,
	versions repositories.VersionRepository,
	configure Configure,
	gitFactory repositories.GitRepositoryFactory,
	prompter repositories.PromptRepository,
) *CommitCommand {
	return &CommitCommand{
		settings:   settings,
		versions:   versions,
		configure:  configure,
		gitFactory: gitFactory,
		prompter:   prompter,
	}
}

func (it *CommitCommand) Execute(ctx context.Context, opts CommitOptions) error {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	gitRepo := it.gitFactory(dir)
	if err = ensureGitVersion(ctx, gitRepo, it.settings.MinGitVersion); err != nil {
		return err
	}

	project, err := it.versions.Load(dir)
	if err != nil {
		return fmt.Errorf("failed to load project version: %w", err)
	}
	local, err := entities.ParseVersion(project.Version, filepath.Base(project.Path))
	if err != nil {
		return err
	}
	logger.Infof("Local version %s (from %s)", local, filepath.Base(project.Path))

	configured, err := it.configure.Execute(ctx, ConfigureOptions{
		RepoName:    filepath.Base(dir),
		ResetServer: opts.ResetServer,
		ResetToken:  opts.ResetToken,
		ResetOwner:  opts.ResetOwner,
	})
	if err != nil {
		return err
	}
	if err = linkRemote(ctx, gitRepo, configured, it.settings.Remote); err != nil {
		return err
	}

	workflow := NewCommitWorkflow(it.settings, gitRepo, it.versions, it.prompter)
	result, err := workflow.Run(ctx, WorkflowInput{
		Project:    project,
		Version:    local,
		Production: opts.Production,
	})
	if err != nil {
		return err
	}

	if result.Aborted {
		logger.Info("Nothing was done")
		return nil
	}
	logger.Infof(
		"Done on %s (committed: %t, pushed: %t, released: %t, warnings: %d)",
		result.Decision.BranchName, result.Committed, result.Pushed, result.Released, len(result.Warnings),
	)
	return nil
}
