//go:build unit

package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/jsonfile"
	"github.com/rios0rios0/xx-cli/test/domain/entitybuilders"
)

func newSettings(t *testing.T) *entities.Settings {
	t.Helper()
	settings, err := entities.LoadSettings(t.TempDir())
	require.NoError(t, err)
	return settings
}

func TestRepoConfigFileRepository(t *testing.T) {
	t.Parallel()

	t.Run("should seed an empty file on first load", func(t *testing.T) {
		t.Parallel()

		// given
		settings := newSettings(t)
		repo := jsonfile.NewRepoConfigFileRepository(settings)

		// when
		config, err := repo.Load()

		// then
		require.NoError(t, err)
		assert.Empty(t, config)
		data, readErr := os.ReadFile(settings.RepoConfigPath())
		require.NoError(t, readErr)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("should persist entries per repository with two-space indentation", func(t *testing.T) {
		t.Parallel()

		// given
		settings := newSettings(t)
		repo := jsonfile.NewRepoConfigFileRepository(settings)
		first := entitybuilders.NewRepoConfigBuilder().BuildRepoConfig()
		second := entitybuilders.NewRepoConfigBuilder().
			WithServer(entities.ServerGitee).
			WithOwnerType(entities.OwnerOrganization).
			WithBelongTo("acme").
			BuildRepoConfig()

		// when
		require.NoError(t, repo.Save("alpha", first))
		require.NoError(t, repo.Save("beta", second))
		config, err := repo.Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, first, config["alpha"])
		assert.Equal(t, second, config["beta"])
		data, readErr := os.ReadFile(filepath.Clean(settings.RepoConfigPath()))
		require.NoError(t, readErr)
		assert.Contains(t, string(data), "\n  \"alpha\": {\n    \"server\": \"GITHUB\",")
	})

	t.Run("should keep partially configured entries", func(t *testing.T) {
		t.Parallel()

		// given
		settings := newSettings(t)
		repo := jsonfile.NewRepoConfigFileRepository(settings)

		// when
		require.NoError(t, repo.Save("alpha", entities.RepoConfig{Server: entities.ServerGitLab}))
		config, err := repo.Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RepoConfig{Server: entities.ServerGitLab}, config["alpha"])
	})
}
