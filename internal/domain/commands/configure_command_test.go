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
	"github.com/rios0rios0/xx-cli/test/domain/entitybuilders"
	"github.com/rios0rios0/xx-cli/test/infrastructure/repositorydoubles"
)

func TestConfigureCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should return a complete configuration without prompting", func(t *testing.T) {
		t.Parallel()

		// given
		config := entitybuilders.NewRepoConfigBuilder().BuildRepoConfig()
		configs := &repositorydoubles.InMemoryRepoConfigRepository{Configs: entities.CommitConfig{"demo": config}}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		prompter := &repositorydoubles.ScriptedPromptRepository{}
		command := commands.NewConfigureCommand(configs, hosts, prompter)

		// when
		result, err := command.Execute(context.Background(), commands.ConfigureOptions{RepoName: "demo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, config, result.Config)
		assert.Equal(t, entities.ServerGitHub, result.Host.Server())
		assert.Empty(t, prompter.Questions)
		assert.Empty(t, configs.Saved)
		assert.Equal(t, []string{"test-token"}, hosts.RequestedTokens)
	})

	t.Run("should ask every field of a new repository and save after each answer", func(t *testing.T) {
		t.Parallel()

		// given
		configs := &repositorydoubles.InMemoryRepoConfigRepository{}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		hosts.Hosts[entities.ServerGitee].User = entities.HostAccount{Login: "alice"}
		prompter := &repositorydoubles.ScriptedPromptRepository{
			Selections: []string{string(entities.ServerGitee)},
			Passwords:  []string{"gitee-token"},
		}
		command := commands.NewConfigureCommand(configs, hosts, prompter)

		// when
		result, err := command.Execute(context.Background(), commands.ConfigureOptions{RepoName: "demo"})

		// then
		require.NoError(t, err)
		expected := entitybuilders.NewRepoConfigBuilder().
			WithServer(entities.ServerGitee).
			WithToken("gitee-token").
			WithBelongTo("alice").
			BuildRepoConfig()
		assert.Equal(t, expected, result.Config)
		assert.Equal(t, expected, configs.Configs["demo"])
		assert.Len(t, configs.Saved, 3)
		require.Len(t, prompter.Infos, 1)
		assert.Contains(t, prompter.Infos[0], "https://gitee.com/profile/personal_access_tokens")
	})

	t.Run("should ask for the owner type and the organization when the account has organizations", func(t *testing.T) {
		t.Parallel()

		// given
		config := entitybuilders.NewRepoConfigBuilder().WithBelongTo("").BuildRepoConfig()
		config.OwnerType = ""
		configs := &repositorydoubles.InMemoryRepoConfigRepository{Configs: entities.CommitConfig{"demo": config}}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		hosts.Hosts[entities.ServerGitHub].User = entities.HostAccount{Login: "octocat"}
		hosts.Hosts[entities.ServerGitHub].Orgs = []entities.HostAccount{{Login: "acme"}}
		prompter := &repositorydoubles.ScriptedPromptRepository{
			Selections: []string{string(entities.OwnerOrganization), "acme"},
		}
		command := commands.NewConfigureCommand(configs, hosts, prompter)

		// when
		result, err := command.Execute(context.Background(), commands.ConfigureOptions{RepoName: "demo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OwnerOrganization, result.Config.OwnerType)
		assert.Equal(t, "acme", result.Config.BelongTo)
		assert.Equal(t, "acme", configs.Configs["demo"].BelongTo)
		require.Len(t, prompter.Options, 2)
		assert.Equal(t, "acme", prompter.Options[1][0].Value)
	})

	t.Run("should ask only the token again when the token is reset", func(t *testing.T) {
		t.Parallel()

		// given
		config := entitybuilders.NewRepoConfigBuilder().BuildRepoConfig()
		configs := &repositorydoubles.InMemoryRepoConfigRepository{Configs: entities.CommitConfig{"demo": config}}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		prompter := &repositorydoubles.ScriptedPromptRepository{Passwords: []string{"rotated"}}
		command := commands.NewConfigureCommand(configs, hosts, prompter)

		// when
		result, err := command.Execute(context.Background(), commands.ConfigureOptions{
			RepoName:   "demo",
			ResetToken: true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "rotated", result.Config.Token)
		assert.Equal(t, "octocat", result.Config.BelongTo)
		assert.Equal(t, []string{"Token:"}, prompter.Questions)
	})

	t.Run("should ask the server and the owner again when both are reset", func(t *testing.T) {
		t.Parallel()

		// given
		config := entitybuilders.NewRepoConfigBuilder().BuildRepoConfig()
		configs := &repositorydoubles.InMemoryRepoConfigRepository{Configs: entities.CommitConfig{"demo": config}}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		hosts.Hosts[entities.ServerGitLab].User = entities.HostAccount{Login: "bob"}
		prompter := &repositorydoubles.ScriptedPromptRepository{Selections: []string{string(entities.ServerGitLab)}}
		command := commands.NewConfigureCommand(configs, hosts, prompter)

		// when
		result, err := command.Execute(context.Background(), commands.ConfigureOptions{
			RepoName:    "demo",
			ResetServer: true,
			ResetOwner:  true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ServerGitLab, result.Config.Server)
		assert.Equal(t, "test-token", result.Config.Token)
		assert.Equal(t, "bob", result.Config.BelongTo)
	})

	t.Run("should give up with the missing fields after three incomplete passes", func(t *testing.T) {
		t.Parallel()

		// given
		config := entitybuilders.NewRepoConfigBuilder().WithToken("").BuildRepoConfig()
		configs := &repositorydoubles.InMemoryRepoConfigRepository{Configs: entities.CommitConfig{"demo": config}}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		prompter := &repositorydoubles.ScriptedPromptRepository{Passwords: []string{"", "", ""}}
		command := commands.NewConfigureCommand(configs, hosts, prompter)

		// when
		result, err := command.Execute(context.Background(), commands.ConfigureOptions{RepoName: "demo"})

		// then
		var incomplete *entities.ConfigIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.Nil(t, result)
		assert.Equal(t, "demo", incomplete.Repo)
		assert.Equal(t, []string{"token"}, incomplete.Missing)
		assert.Len(t, prompter.Questions, 3)
	})

	t.Run("should ask to check the token when the account cannot be queried", func(t *testing.T) {
		t.Parallel()

		// given
		config := entitybuilders.NewRepoConfigBuilder().WithBelongTo("").BuildRepoConfig()
		configs := &repositorydoubles.InMemoryRepoConfigRepository{Configs: entities.CommitConfig{"demo": config}}
		hosts := repositorydoubles.NewStubHostRepositoryFactory()
		hosts.Hosts[entities.ServerGitHub].UserErr = errors.New("401 Bad credentials")
		command := commands.NewConfigureCommand(configs, hosts, &repositorydoubles.ScriptedPromptRepository{})

		// when
		_, err := command.Execute(context.Background(), commands.ConfigureOptions{RepoName: "demo"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "please check the token")
	})

	t.Run("should fail when the configuration cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		configs := &repositorydoubles.InMemoryRepoConfigRepository{LoadErr: errors.New("permission denied")}
		command := commands.NewConfigureCommand(
			configs,
			repositorydoubles.NewStubHostRepositoryFactory(),
			&repositorydoubles.ScriptedPromptRepository{},
		)

		// when
		_, err := command.Execute(context.Background(), commands.ConfigureOptions{RepoName: "demo"})

		// then
		require.ErrorContains(t, err, "permission denied")
	})
}
