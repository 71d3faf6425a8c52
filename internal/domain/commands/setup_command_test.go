//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/test/infrastructure/repositorydoubles"
)

func TestSetupCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should initialise the directory and add the remote without committing", func(t *testing.T) {
		t.Parallel()

		// given
		var dirs []string
		git := repositorydoubles.NewSpyGitRepository("main")
		git.Repository = false
		git.Remotes = nil
		host := &repositorydoubles.SpyHostRepository{ServerType: entities.ServerGitHub}
		configure := configuredWith(host)
		command := commands.NewSetupCommand(commandSettings(), configure, factoryOf(git, &dirs))

		// when
		err := command.Execute(context.Background(), commands.SetupOptions{Dir: "/work/demo", ResetOwner: true})

		// then
		require.NoError(t, err)
		assert.True(t, configure.LastOpts.ResetOwner)
		assert.Equal(t, []string{
			"init",
			"remote add origin https://example.com/octocat/demo.git",
		}, git.Calls)
	})
}

func TestLinkRemote(t *testing.T) {
	t.Parallel()

	t.Run("should keep an existing remote untouched", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository("develop/1.0.0")
		host := &repositorydoubles.SpyHostRepository{}
		configured := configuredWith(host).Result

		// when
		err := commands.LinkRemote(context.Background(), git, configured, "origin")

		// then
		require.NoError(t, err)
		assert.Empty(t, git.Calls)
		assert.Len(t, host.EnsureCalls, 1)
	})

	t.Run("should add a missing remote to an existing repository", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository("develop/1.0.0")
		configured := configuredWith(&repositorydoubles.SpyHostRepository{}).Result

		// when
		err := commands.LinkRemote(context.Background(), git, configured, "upstream")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"remote add upstream https://example.com/octocat/demo.git"}, git.Calls)
	})
}

func TestEnsureGitVersion(t *testing.T) {
	t.Parallel()

	t.Run("should accept a git newer than the minimum", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository("main")

		// when
		err := commands.EnsureGitVersion(context.Background(), git, "2.20.0")

		// then
		require.NoError(t, err)
	})

	t.Run("should reject a git older than the minimum", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository("main")
		git.GitVersion = "2.19.1"

		// when
		err := commands.EnsureGitVersion(context.Background(), git, "2.20.0")

		// then
		require.ErrorIs(t, err, entities.ErrGitTooOld)
	})
}
