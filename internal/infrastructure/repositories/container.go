package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	domainRepos "github.com/rios0rios0/xx-cli/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/git"
	giteeRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/gitee"
	ghRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/gitlab"
	jsonRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/jsonfile"
	promptRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/prompt"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register host registry with all hosting provider factories
	if err := container.Provide(func(settings *entities.Settings) *HostRegistry {
		reg := NewHostRegistry(settings.APIURLs)
		reg.Register(entities.ServerGitHub, hostFactory(
			ghRepo.NewGitHubHostRepository, ghRepo.NewGitHubHostRepositoryWithBaseURL))
		reg.Register(entities.ServerGitee, hostFactory(
			giteeRepo.NewGiteeHostRepository, giteeRepo.NewGiteeHostRepositoryWithBaseURL))
		reg.Register(entities.ServerGitLab, hostFactory(
			glRepo.NewGitLabHostRepository, glRepo.NewGitLabHostRepositoryWithBaseURL))
		return reg
	}); err != nil {
		return err
	}

	// Register file, git and terminal adapters
	if err := container.Provide(jsonRepo.NewProjectVersionRepository); err != nil {
		return err
	}
	if err := container.Provide(jsonRepo.NewRepoConfigFileRepository); err != nil {
		return err
	}
	if err := container.Provide(promptRepo.NewTerminalPromptRepository); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.GitRepositoryFactory {
		return gitRepo.NewGitRepository
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *HostRegistry) domainRepos.HostRepositoryFactory {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *jsonRepo.ProjectVersionRepository) domainRepos.VersionRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *jsonRepo.RepoConfigFileRepository) domainRepos.RepoConfigRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *promptRepo.TerminalPromptRepository) domainRepos.PromptRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
