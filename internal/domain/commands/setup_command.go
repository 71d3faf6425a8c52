package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// Setup is the interface for the setup command.
type Setup interface {
	Execute(ctx context.Context, opts SetupOptions) error
}

// SetupOptions holds runtime options for the setup command.
type SetupOptions struct {
	Dir         string
	ResetServer bool
	ResetToken  bool
	ResetOwner  bool
}

// SetupCommand configures the hosting provider of a directory and links it to
// its remote repository without committing anything.
type SetupCommand struct {
	settings   *entities.Settings
	configure  Configure
	gitFactory repositories.GitRepositoryFactory
}

// NewSetupCommand creates a new SetupCommand.
func NewSetupCommand(
	settings *entities.Settings,
	configure Configure,
	gitFactory repositories.GitRepositoryFactory,
) *SetupCommand {
	return &SetupCommand{
		settings:   settings,
		configure:  configure,
		gitFactory: gitFactory,
	}
}

func (it *SetupCommand) Execute(ctx context.Context, opts SetupOptions) error {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	gitRepo := it.gitFactory(dir)
	if err = ensureGitVersion(ctx, gitRepo, it.settings.MinGitVersion); err != nil {
		return err
	}

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

	logger.Infof(
		"Repository %q is linked to %s (%s)",
		configured.RepoName, configured.Config.Server.Label(), configured.Config.BelongTo,
	)
	return nil
}
