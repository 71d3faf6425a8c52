package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

const (
	perPage             = 100
	readmePath          = "README.md"
	readmeCommitMessage = "doc: add README.md file"
	tokenHelpURL        = "https://docs.github.com/en/authentication/keeping-your-account-and-data-secure/managing-your-personal-access-tokens"
)

// GitHubHostRepository implements repositories.HostRepository for GitHub.
type GitHubHostRepository struct {
	client *gh.Client
}

// NewGitHubHostRepository creates a GitHub host authenticated with token.
func NewGitHubHostRepository(token string) repositories.HostRepository {
	return &GitHubHostRepository{client: gh.NewClient(newTokenClient(token))}
}

// NewGitHubHostRepositoryWithBaseURL creates a GitHub host talking to the API
// root baseURL, e.g. "https://ghe.example.com/api/v3" for GitHub Enterprise Server.
func NewGitHubHostRepositoryWithBaseURL(token, baseURL string) (*GitHubHostRepository, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
	}
	client := gh.NewClient(newTokenClient(token))
	client.BaseURL = parsed
	return &GitHubHostRepository{client: client}, nil
}

func newTokenClient(token string) *http.Client {
	//nolint:exhaustruct // Static tokens need no refresh or expiry data
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(context.Background(), source)
}

func (it *GitHubHostRepository) Server() entities.ServerType { return entities.ServerGitHub }

// EnsureRemoteRepo creates owner/name with a README when GitHub does not know it.
func (it *GitHubHostRepository) EnsureRemoteRepo(
	ctx context.Context,
	owner, name string,
	ownerType entities.OwnerType,
) error {
	exists, err := it.repositoryExists(ctx, owner, name)
	if err != nil {
		return err
	}
	if exists {
		logger.Debugf("Repository %s/%s already exists on GitHub", owner, name)
		return nil
	}

	org := ""
	if ownerType == entities.OwnerOrganization {
		org = owner
	}
	//nolint:exhaustruct // Only the repository name is required
	if _, _, err = it.client.Repositories.Create(ctx, org, &gh.Repository{Name: gh.String(name)}); err != nil {
		return fmt.Errorf("failed to create repository %s/%s: %w", owner, name, err)
	}
	logger.Infof("Created repository %s/%s on GitHub", owner, name)

	//nolint:exhaustruct // Branch and committer default to the repository settings
	readme := &gh.RepositoryContentFileOptions{
		Message: gh.String(readmeCommitMessage),
		Content: []byte("# " + name + "\n"),
	}
	if _, _, err = it.client.Repositories.CreateFile(ctx, owner, name, readmePath, readme); err != nil {
		return fmt.Errorf("failed to create README in %s/%s: %w", owner, name, err)
	}
	return nil
}

func (it *GitHubHostRepository) repositoryExists(ctx context.Context, owner, name string) (bool, error) {
	_, _, err := it.client.Repositories.Get(ctx, owner, name)
	if err == nil {
		return true, nil
	}
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("failed to look up repository %s/%s: %w", owner, name, err)
}

func (it *GitHubHostRepository) GetUser(ctx context.Context) (*entities.HostAccount, error) {
	user, _, err := it.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return &entities.HostAccount{Login: user.GetLogin()}, nil
}

func (it *GitHubHostRepository) GetOrgs(ctx context.Context) ([]entities.HostAccount, error) {
	var accounts []entities.HostAccount
	opts := &gh.ListOptions{PerPage: perPage}
	for {
		orgs, resp, err := it.client.Organizations.List(ctx, "", opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list organizations: %w", err)
		}
		for _, org := range orgs {
			accounts = append(accounts, entities.HostAccount{Login: org.GetLogin()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return accounts, nil
}

func (it *GitHubHostRepository) GetRemoteURL(owner, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s.git", owner, name)
}

func (it *GitHubHostRepository) GetTokenHelpURL() string { return tokenHelpURL }
