package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// ensureGitVersion fails when the installed git is older than the configured minimum.
func ensureGitVersion(ctx context.Context, gitRepo repositories.GitRepository, minimum string) error {
	version, err := gitRepo.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to detect git version: %w", err)
	}
	logger.Debugf("Detected git %s", version)
	return entities.EnsureGitVersion(version, minimum)
}

// linkRemote makes sure the hosted repository exists, that the working
// directory is a git repository and that it has the configured remote.
func linkRemote(
	ctx context.Context,
	gitRepo repositories.GitRepository,
	configured *ConfigureResult,
	remote string,
) error {
	config := configured.Config
	if err := configured.Host.EnsureRemoteRepo(ctx, config.BelongTo, configured.RepoName, config.OwnerType); err != nil {
		return fmt.Errorf("failed to ensure remote repository: %w", err)
	}

	if !gitRepo.IsRepository() {
		logger.Infof("Initializing git repository for %q", configured.RepoName)
		if err := gitRepo.Init(); err != nil {
			return err
		}
	}

	hasRemote, err := gitRepo.HasRemote(remote)
	if err != nil {
		return err
	}
	if hasRemote {
		return nil
	}

	url := configured.Host.GetRemoteURL(config.BelongTo, configured.RepoName)
	logger.Infof("Adding remote %q -> %s", remote, url)
	if err = gitRepo.AddRemote(remote, url); err != nil {
		return err
	}
	return nil
}
