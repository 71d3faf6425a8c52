package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

const (
	repoConfigFileMode = 0o600
	repoConfigDirMode  = 0o755
)

// RepoConfigFileRepository implements repositories.RepoConfigRepository on a
// single JSON document keyed by repository name.
type RepoConfigFileRepository struct {
	path string
}

// NewRepoConfigFileRepository creates a repository backed by the file named in settings.
func NewRepoConfigFileRepository(settings *entities.Settings) *RepoConfigFileRepository {
	return &RepoConfigFileRepository{path: settings.RepoConfigPath()}
}

// Load returns every stored configuration, seeding an empty file on first use.
func (it *RepoConfigFileRepository) Load() (entities.CommitConfig, error) {
	if err := it.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(it.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", it.path, err)
	}

	config := entities.CommitConfig{}
	if err = json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", it.path, err)
	}
	if config == nil {
		config = entities.CommitConfig{}
	}
	return config, nil
}

// Save replaces the entry of repoName and rewrites the file.
func (it *RepoConfigFileRepository) Save(repoName string, repoConfig entities.RepoConfig) error {
	config, err := it.Load()
	if err != nil {
		return err
	}
	config[repoName] = repoConfig
	return it.write(config)
}

func (it *RepoConfigFileRepository) ensureFile() error {
	if _, err := os.Stat(it.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %q: %w", it.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(it.path), repoConfigDirMode); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", it.path, err)
	}
	logger.Infof("Creating repository configuration file %q", it.path)
	return it.write(entities.CommitConfig{})
}

func (it *RepoConfigFileRepository) write(config entities.CommitConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode repository configuration: %w", err)
	}
	if err = os.WriteFile(it.path, append(data, '\n'), repoConfigFileMode); err != nil {
		return fmt.Errorf("failed to write %q: %w", it.path, err)
	}
	return nil
}
