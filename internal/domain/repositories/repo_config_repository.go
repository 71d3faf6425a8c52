package repositories

import "github.com/rios0rios0/xx-cli/internal/domain/entities"

// RepoConfigRepository persists the hosting configuration of every repository.
type RepoConfigRepository interface {
	Load() (entities.CommitConfig, error)
	Save(repoName string, config entities.RepoConfig) error
}
