//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// SpyVersionRepository implements repositories.VersionRepository in memory.
type SpyVersionRepository struct {
	Project *entities.ProjectConfig
	LoadErr error
	SaveErr error

	// spy: directories loaded and versions written
	LoadedDirs    []string
	SavedVersions []string
}

var _ repositories.VersionRepository = (*SpyVersionRepository)(nil)

func (r *SpyVersionRepository) Load(dir string) (*entities.ProjectConfig, error) {
	r.LoadedDirs = append(r.LoadedDirs, dir)
	return r.Project, r.LoadErr
}

func (r *SpyVersionRepository) SaveVersion(project *entities.ProjectConfig, version string) (bool, error) {
	if r.SaveErr != nil {
		return false, r.SaveErr
	}
	if project.Version == version {
		return false, nil
	}
	r.SavedVersions = append(r.SavedVersions, version)
	project.Version = version
	return true, nil
}
