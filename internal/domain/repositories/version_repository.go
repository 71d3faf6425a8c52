package repositories

import "github.com/rios0rios0/xx-cli/internal/domain/entities"

// VersionRepository reads and writes the version of a project.
type VersionRepository interface {
	// Load returns the project file of dir, creating xx.json when neither
	// xx.json nor package.json exist.
	Load(dir string) (*entities.ProjectConfig, error)

	// SaveVersion writes version into the project file. It reports false
	// when the file already holds that version.
	SaveVersion(project *entities.ProjectConfig, version string) (bool, error)
}
