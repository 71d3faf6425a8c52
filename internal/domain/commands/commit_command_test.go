//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
	"github.com/rios0rios0/xx-cli/test/domain/commanddoubles"
	"github.com/rios0rios0/xx-cli/test/domain/entitybuilders"
	"github.com/rios0rios0/xx-cli/test/infrastructure/repositorydoubles"
)

func commandSettings() *entities.Settings {
	return &entities.Settings{
		Remote:        entities.DefaultRemote,
		MainBranch:    entities.DefaultMainBranch,
		MinGitVersion: entities.DefaultMinGitVersion,
	}
}

func configuredWith(host *repositorydoubles.SpyHostRepository) *commanddoubles.StubConfigureCommand {
	return &commanddoubles.StubConfigureCommand{
		Result: &commands.ConfigureResult{
			RepoName: "demo",
			Config:   entitybuilders.NewRepoConfigBuilder().BuildRepoConfig(),
			Host:     host,
		},
	}
}

func factoryOf(git *repositorydoubles.SpyGitRepository, dirs *[]string) repositories.GitRepositoryFactory {
	return func(dir string) repositories.GitRepository {
		*dirs = append(*dirs, dir)
		return git
	}
}

func TestCommitCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should configure, link and run the workflow in the given directory", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		git := repositorydoubles.NewSpyGitRepository("develop/0.0.1")
		host := &repositorydoubles.SpyHostRepository{ServerType: entities.ServerGitHub}
		configure := configuredWith(host)
		versions := &repositorydoubles.SpyVersionRepository{
			Project: &entities.ProjectConfig{Path: "/work/demo/xx.json", Name: "demo", Version: "0.0.1"},
		}
		command := commands.NewCommitCommand(
			commandSettings(), versions, configure, factoryOf(git, &dirs), &repositorydoubles.ScriptedPromptRepository{},
		)

		// when
		err := command.Execute(context.Background(), commands.CommitOptions{Dir: "/work/demo", ResetToken: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/demo"}, dirs)
		assert.Equal(t, []string{"/work/demo"}, versions.LoadedDirs)
		assert.Equal(t, "demo", configure.LastOpts.RepoName)
		assert.True(t, configure.LastOpts.ResetToken)
		require.Len(t, host.EnsureCalls, 1)
		assert.Equal(t, "octocat", host.EnsureCalls[0].Owner)
		assert.Equal(t, []string{"ls-remote origin", "pull origin main"}, git.Calls)
	})

	t.Run("should reject an invalid version before touching git or the configuration", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		git := repositorydoubles.NewSpyGitRepository("develop/1.0.0")
		configure := configuredWith(&repositorydoubles.SpyHostRepository{})
		versions := &repositorydoubles.SpyVersionRepository{
			Project: &entities.ProjectConfig{Path: "/work/demo/package.json", Name: "demo", Version: "1.0"},
		}
		command := commands.NewCommitCommand(
			commandSettings(), versions, configure, factoryOf(git, &dirs), &repositorydoubles.ScriptedPromptRepository{},
		)

		// when
		err := command.Execute(context.Background(), commands.CommitOptions{Dir: "/work/demo"})

		// then
		var invalid *entities.InvalidVersionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "1.0", invalid.Value)
		assert.Equal(t, "package.json", invalid.Source)
		assert.Zero(t, configure.ExecuteCallCount)
		assert.Empty(t, git.Calls)
	})

	t.Run("should refuse to run with an outdated git", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		git := repositorydoubles.NewSpyGitRepository("develop/1.0.0")
		git.GitVersion = "2.9.5"
		versions := &repositorydoubles.SpyVersionRepository{}
		command := commands.NewCommitCommand(
			commandSettings(), versions, configuredWith(&repositorydoubles.SpyHostRepository{}),
			factoryOf(git, &dirs), &repositorydoubles.ScriptedPromptRepository{},
		)

		// when
		err := command.Execute(context.Background(), commands.CommitOptions{Dir: "/work/demo"})

		// then
		require.ErrorIs(t, err, entities.ErrGitTooOld)
		assert.Empty(t, versions.LoadedDirs)
	})

	t.Run("should stop when the configuration cannot be completed", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		git := repositorydoubles.NewSpyGitRepository("develop/1.0.0")
		configure := &commanddoubles.StubConfigureCommand{
			ExecuteErr: &entities.ConfigIncompleteError{Repo: "demo", Missing: []string{"token"}},
		}
		versions := &repositorydoubles.SpyVersionRepository{
			Project: &entities.ProjectConfig{Path: "/work/demo/xx.json", Name: "demo", Version: "1.0.0"},
		}
		command := commands.NewCommitCommand(
			commandSettings(), versions, configure, factoryOf(git, &dirs), &repositorydoubles.ScriptedPromptRepository{},
		)

		// when
		err := command.Execute(context.Background(), commands.CommitOptions{Dir: "/work/demo"})

		// then
		var incomplete *entities.ConfigIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.Empty(t, git.Calls)
	})

	t.Run("should fail when the remote repository cannot be ensured", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		git := repositorydoubles.NewSpyGitRepository("develop/1.0.0")
		host := &repositorydoubles.SpyHostRepository{EnsureErr: errors.New("403 Forbidden")}
		versions := &repositorydoubles.SpyVersionRepository{
			Project: &entities.ProjectConfig{Path: "/work/demo/xx.json", Name: "demo", Version: "1.0.0"},
		}
		command := commands.NewCommitCommand(
			commandSettings(), versions, configuredWith(host), factoryOf(git, &dirs),
			&repositorydoubles.ScriptedPromptRepository{},
		)

		// when
		err := command.Execute(context.Background(), commands.CommitOptions{Dir: "/work/demo"})

		// then
		require.ErrorContains(t, err, "403 Forbidden")
		assert.Empty(t, git.Calls)
	})
}
