package repositories

import ghRepo "github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/github"

// GitHubHostFactory exports the GitHub factory registered by RegisterProviders for testing.
var GitHubHostFactory = hostFactory( //nolint:gochecknoglobals // test export
	ghRepo.NewGitHubHostRepository, ghRepo.NewGitHubHostRepositoryWithBaseURL)
