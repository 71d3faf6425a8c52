//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("should fall back to defaults when no files exist", func(t *testing.T) {
		t.Parallel()

		// given
		home := t.TempDir()

		// when
		settings, err := entities.LoadSettings(home)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".xx-cli"), settings.CLIHome)
		assert.Equal(t, "origin", settings.Remote)
		assert.Equal(t, "main", settings.MainBranch)
		assert.Equal(t, entities.DefaultMinGitVersion, settings.MinGitVersion)
		assert.Equal(t, filepath.Join(home, ".xxRepo.json"), settings.RepoConfigPath())
	})

	t.Run("should read CLI_HOME from the env file and overrides from settings.yaml", func(t *testing.T) {
		t.Parallel()

		// given
		home := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(home, ".xx-cli.env"), []byte("CLI_HOME=custom\n"), 0o600))
		require.NoError(t, os.MkdirAll(filepath.Join(home, "custom"), 0o755))
		yamlContent := "remote: upstream\nmain_branch: trunk\nrepo_config_file: /tmp/repos.json\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, "custom", "settings.yaml"), []byte(yamlContent), 0o600))

		// when
		settings, err := entities.LoadSettings(home)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "custom"), settings.CLIHome)
		assert.Equal(t, "upstream", settings.Remote)
		assert.Equal(t, "trunk", settings.MainBranch)
		assert.Equal(t, "/tmp/repos.json", settings.RepoConfigPath())
		assert.Equal(t, entities.DefaultMinGitVersion, settings.MinGitVersion)
	})

	t.Run("should fail on malformed settings.yaml", func(t *testing.T) {
		t.Parallel()

		// given
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".xx-cli"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(home, ".xx-cli", "settings.yaml"), []byte("remote: [\n"), 0o600))

		// when
		_, err := entities.LoadSettings(home)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse settings file")
	})
}

func TestLoadSettingsAPIURLs(t *testing.T) {
	t.Parallel()

	writeSettings := func(t *testing.T, content string) string {
		t.Helper()
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".xx-cli"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(home, ".xx-cli", "settings.yaml"), []byte(content), 0o600))
		return home
	}

	t.Run("should read the API root of each self-hosted server", func(t *testing.T) {
		t.Parallel()

		// given
		home := writeSettings(t, "api_urls:\n  GITHUB: https://ghe.example.com/api/v3\n  GITLAB: https://gitlab.example.com\n")

		// when
		settings, err := entities.LoadSettings(home)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[entities.ServerType]string{
			entities.ServerGitHub: "https://ghe.example.com/api/v3",
			entities.ServerGitLab: "https://gitlab.example.com",
		}, settings.APIURLs)
	})

	t.Run("should reject an unknown server type", func(t *testing.T) {
		t.Parallel()

		// given
		home := writeSettings(t, "api_urls:\n  BITBUCKET: https://bitbucket.example.com\n")

		// when
		_, err := entities.LoadSettings(home)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown server type "BITBUCKET"`)
	})

	t.Run("should reject a relative URL", func(t *testing.T) {
		t.Parallel()

		// given
		home := writeSettings(t, "api_urls:\n  GITEE: gitee.internal/api/v5\n")

		// when
		_, err := entities.LoadSettings(home)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GITEE needs an absolute URL")
	})
}

func TestLoadSettingsExpandsEnvironment(t *testing.T) {
	// given
	home := t.TempDir()
	t.Setenv("XX_TEST_REMOTE", "mirror")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".xx-cli"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".xx-cli", "settings.yaml"), []byte("remote: ${XX_TEST_REMOTE}\n"), 0o600,
	))

	// when
	settings, err := entities.LoadSettings(home)

	// then
	require.NoError(t, err)
	assert.Equal(t, "mirror", settings.Remote)
}
