package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

const projectFileMode = 0o644

// ProjectVersionRepository implements repositories.VersionRepository on
// xx.json or package.json. Writes touch only the "version" key.
type ProjectVersionRepository struct{}

// NewProjectVersionRepository creates a new ProjectVersionRepository.
func NewProjectVersionRepository() *ProjectVersionRepository {
	return &ProjectVersionRepository{}
}

func (it *ProjectVersionRepository) Load(dir string) (*entities.ProjectConfig, error) {
	for _, fileName := range []string{entities.ProjectFile, entities.FallbackProjectFile} {
		path := filepath.Join(dir, fileName)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%q is not valid JSON", path)
		}

		name := gjson.GetBytes(data, "name").String()
		if name == "" {
			name = filepath.Base(dir)
		}
		return &entities.ProjectConfig{
			Path:    path,
			Name:    name,
			Version: gjson.GetBytes(data, "version").String(),
		}, nil
	}

	return it.create(dir)
}

func (it *ProjectVersionRepository) SaveVersion(project *entities.ProjectConfig, version string) (bool, error) {
	data, err := os.ReadFile(project.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", project.Path, err)
	}
	if gjson.GetBytes(data, "version").String() == version {
		project.Version = version
		return false, nil
	}

	updated, err := sjson.SetBytes(data, "version", version)
	if err != nil {
		return false, fmt.Errorf("failed to set version in %q: %w", project.Path, err)
	}
	if err = os.WriteFile(project.Path, updated, projectFileMode); err != nil {
		return false, fmt.Errorf("failed to write %q: %w", project.Path, err)
	}

	logger.Infof("Updated version of %s to %s", filepath.Base(project.Path), version)
	project.Version = version
	return true, nil
}

func (it *ProjectVersionRepository) create(dir string) (*entities.ProjectConfig, error) {
	path := filepath.Join(dir, entities.ProjectFile)
	name := filepath.Base(dir)

	content, err := sjson.SetBytes([]byte("{}"), "version", entities.InitialVersion)
	if err == nil {
		content, err = sjson.SetBytes(content, "name", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %q: %w", path, err)
	}
	content = []byte(gjson.GetBytes(content, "@pretty").Raw)

	if err = os.WriteFile(path, content, projectFileMode); err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}

	logger.Infof("Created %s with version %s", entities.ProjectFile, entities.InitialVersion)
	return &entities.ProjectConfig{
		Path:    path,
		Name:    name,
		Version: entities.InitialVersion,
		Created: true,
	}, nil
}
