//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// InMemoryRepoConfigRepository implements repositories.RepoConfigRepository over a map.
type InMemoryRepoConfigRepository struct {
	Configs entities.CommitConfig
	LoadErr error
	SaveErr error

	// spy: every saved snapshot, in order
	Saved []entities.RepoConfig
}

var _ repositories.RepoConfigRepository = (*InMemoryRepoConfigRepository)(nil)

func (r *InMemoryRepoConfigRepository) Load() (entities.CommitConfig, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.Configs == nil {
		r.Configs = entities.CommitConfig{}
	}
	return r.Configs, nil
}

func (r *InMemoryRepoConfigRepository) Save(repoName string, config entities.RepoConfig) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	if r.Configs == nil {
		r.Configs = entities.CommitConfig{}
	}
	r.Configs[repoName] = config
	r.Saved = append(r.Saved, config)
	return nil
}
