package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

const maxConfigurePasses = 3

// Configure is the interface for the provider configuration flow.
type Configure interface {
	Execute(ctx context.Context, opts ConfigureOptions) (*ConfigureResult, error)
}

// ConfigureOptions selects the repository and the fields to ask again.
type ConfigureOptions struct {
	RepoName    string
	ResetServer bool
	ResetToken  bool
	ResetOwner  bool
}

func (o ConfigureOptions) anyReset() bool {
	return o.ResetServer || o.ResetToken || o.ResetOwner
}

// ConfigureResult is a complete configuration and the host it points at.
type ConfigureResult struct {
	RepoName string
	Config   entities.RepoConfig
	Host     repositories.HostRepository
}

// ConfigureCommand asks the operator for every missing or reset field of a
// repository configuration and persists each answer as soon as it is given.
type ConfigureCommand struct {
	configs  repositories.RepoConfigRepository
	hosts    repositories.HostRepositoryFactory
	prompter repositories.PromptRepository
}

// NewConfigureCommand creates a new ConfigureCommand.
func NewConfigureCommand(
	configs repositories.RepoConfigRepository,
	hosts repositories.HostRepositoryFactory,
	prompter repositories.PromptRepository,
) *ConfigureCommand {
	return &ConfigureCommand{
		configs:  configs,
		hosts:    hosts,
		prompter: prompter,
	}
}

// Execute returns the configuration of opts.RepoName, running at most three
// configuration passes before giving up with a ConfigIncompleteError.
func (it *ConfigureCommand) Execute(ctx context.Context, opts ConfigureOptions) (*ConfigureResult, error) {
	all, err := it.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load repository configuration: %w", err)
	}
	config := all[opts.RepoName]

	pending := opts
	for pass := 1; ; pass++ {
		validateErr := config.Validate(opts.RepoName)
		if validateErr == nil && !pending.anyReset() {
			host, hostErr := it.hosts.Get(config.Server, config.Token)
			if hostErr != nil {
				return nil, hostErr
			}
			return &ConfigureResult{RepoName: opts.RepoName, Config: config, Host: host}, nil
		}
		if pass > maxConfigurePasses {
			return nil, validateErr
		}
		if validateErr != nil {
			logger.Warn(validateErr.Error())
		}

		config, err = it.configurePass(ctx, opts.RepoName, config, pending)
		if err != nil {
			return nil, err
		}
		pending = ConfigureOptions{RepoName: opts.RepoName}
	}
}

func (it *ConfigureCommand) configurePass(
	ctx context.Context,
	repoName string,
	config entities.RepoConfig,
	opts ConfigureOptions,
) (entities.RepoConfig, error) {
	var err error
	if opts.ResetServer || config.Server == "" {
		if config.Server, err = it.askServer(); err != nil {
			return config, err
		}
		if err = it.save(repoName, config); err != nil {
			return config, err
		}
	}

	if opts.ResetToken || config.Token == "" {
		if config.Token, err = it.askToken(config.Server); err != nil {
			return config, err
		}
		if err = it.save(repoName, config); err != nil {
			return config, err
		}
	}
	if config.Token == "" {
		return config, nil
	}

	if opts.ResetOwner || config.OwnerType == "" || config.BelongTo == "" {
		if config.OwnerType, config.BelongTo, err = it.askOwner(ctx, config); err != nil {
			return config, err
		}
		if err = it.save(repoName, config); err != nil {
			return config, err
		}
	}
	return config, nil
}

func (it *ConfigureCommand) askServer() (entities.ServerType, error) {
	servers := it.hosts.Servers()
	options := make([]repositories.PromptOption, 0, len(servers))
	for _, server := range servers {
		options = append(options, repositories.PromptOption{Label: server.Label(), Value: string(server)})
	}
	value, err := it.prompter.Select("Where is the remote repository hosted?", options, 0)
	if err != nil {
		return "", fmt.Errorf("failed to select server: %w", err)
	}
	return entities.ServerType(value), nil
}

func (it *ConfigureCommand) askToken(server entities.ServerType) (string, error) {
	host, err := it.hosts.Get(server, "")
	if err != nil {
		return "", err
	}
	it.prompter.Warn(fmt.Sprintf("A %s personal access token is required to manage the remote repository.", server.Label()))
	it.prompter.Info("Create one at " + host.GetTokenHelpURL())

	token, err := it.prompter.Password("Token:")
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

func (it *ConfigureCommand) askOwner(
	ctx context.Context,
	config entities.RepoConfig,
) (entities.OwnerType, string, error) {
	host, err := it.hosts.Get(config.Server, config.Token)
	if err != nil {
		return "", "", err
	}
	user, err := host.GetUser(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to query the %s account, please check the token: %w", config.Server.Label(), err)
	}
	orgs, err := host.GetOrgs(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to query the %s organizations, please check the token: %w", config.Server.Label(), err)
	}
	if len(orgs) == 0 {
		return entities.OwnerUser, user.Login, nil
	}

	ownerType, err := it.prompter.Select("Who owns the remote repository?", []repositories.PromptOption{
		{Label: "Personal account (" + user.Login + ")", Value: string(entities.OwnerUser)},
		{Label: "Organization", Value: string(entities.OwnerOrganization)},
	}, 0)
	if err != nil {
		return "", "", fmt.Errorf("failed to select owner type: %w", err)
	}
	if entities.OwnerType(ownerType) == entities.OwnerUser {
		return entities.OwnerUser, user.Login, nil
	}

	options := make([]repositories.PromptOption, 0, len(orgs))
	for _, org := range orgs {
		options = append(options, repositories.PromptOption{Label: org.Login, Value: org.Login})
	}
	org, err := it.prompter.Select("Which organization?", options, 0)
	if err != nil {
		return "", "", fmt.Errorf("failed to select organization: %w", err)
	}
	return entities.OwnerOrganization, org, nil
}

func (it *ConfigureCommand) save(repoName string, config entities.RepoConfig) error {
	if err := it.configs.Save(repoName, config); err != nil {
		return fmt.Errorf("failed to save configuration of %q: %w", repoName, err)
	}
	return nil
}
