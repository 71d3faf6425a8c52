package gitee

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

const (
	apiURL       = "https://gitee.com/api/v5/"
	perPage      = 100
	tokenHelpURL = "https://gitee.com/profile/personal_access_tokens"
)

// accessTokenTransport authenticates every request with the access_token query parameter.
type accessTokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *accessTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	query := clone.URL.Query()
	query.Set("access_token", t.token)
	clone.URL.RawQuery = query.Encode()
	return t.base.RoundTrip(clone)
}

// GiteeHostRepository implements repositories.HostRepository for Gitee. The
// Gitee v5 API mirrors the GitHub REST layout, so the go-github client is
// pointed at it.
type GiteeHostRepository struct {
	client *gh.Client
}

// NewGiteeHostRepository creates a Gitee host authenticated with token.
func NewGiteeHostRepository(token string) repositories.HostRepository {
	base, _ := url.Parse(apiURL)
	return newGiteeHostRepository(token, base)
}

// NewGiteeHostRepositoryWithBaseURL creates a Gitee host talking to the v5 API root baseURL.
func NewGiteeHostRepositoryWithBaseURL(token, baseURL string) (*GiteeHostRepository, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid Gitee API URL %q: %w", baseURL, err)
	}
	return newGiteeHostRepository(token, parsed), nil
}

func newGiteeHostRepository(token string, baseURL *url.URL) *GiteeHostRepository {
	//nolint:exhaustruct // Default timeouts apply
	httpClient := &http.Client{
		Transport: &accessTokenTransport{token: token, base: http.DefaultTransport},
	}
	client := gh.NewClient(httpClient)
	client.BaseURL = baseURL
	return &GiteeHostRepository{client: client}
}

func (it *GiteeHostRepository) Server() entities.ServerType { return entities.ServerGitee }

// EnsureRemoteRepo creates owner/name, without any initial commit, when Gitee does not know it.
func (it *GiteeHostRepository) EnsureRemoteRepo(
	ctx context.Context,
	owner, name string,
	ownerType entities.OwnerType,
) error {
	_, _, err := it.client.Repositories.Get(ctx, owner, name)
	if err == nil {
		logger.Debugf("Repository %s/%s already exists on Gitee", owner, name)
		return nil
	}
	var errResp *gh.ErrorResponse
	if !errors.As(err, &errResp) || errResp.Response == nil || errResp.Response.StatusCode != http.StatusNotFound {
		return fmt.Errorf("failed to look up repository %s/%s: %w", owner, name, err)
	}

	org := ""
	if ownerType == entities.OwnerOrganization {
		org = owner
	}
	//nolint:exhaustruct // Only the repository name is required
	if _, _, err = it.client.Repositories.Create(ctx, org, &gh.Repository{Name: gh.String(name)}); err != nil {
		return fmt.Errorf("failed to create repository %s/%s: %w", owner, name, err)
	}
	logger.Infof("Created repository %s/%s on Gitee", owner, name)
	return nil
}

func (it *GiteeHostRepository) GetUser(ctx context.Context) (*entities.HostAccount, error) {
	user, _, err := it.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return &entities.HostAccount{Login: user.GetLogin()}, nil
}

func (it *GiteeHostRepository) GetOrgs(ctx context.Context) ([]entities.HostAccount, error) {
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

func (it *GiteeHostRepository) GetRemoteURL(owner, name string) string {
	return fmt.Sprintf("git@gitee.com:%s/%s.git", owner, name)
}

func (it *GiteeHostRepository) GetTokenHelpURL() string { return tokenHelpURL }
