package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

const (
	defaultWebURL = "https://gitlab.com"
	perPage       = 100
	tokenHelpURL  = "https://docs.gitlab.com/user/profile/personal_access_tokens/"
)

var errClientNotInitialized = errors.New("gitlab client not initialized")

// GitLabHostRepository implements repositories.HostRepository for GitLab.
type GitLabHostRepository struct {
	client *gl.Client
	webURL string
}

// NewGitLabHostRepository creates a gitlab.com host authenticated with token.
func NewGitLabHostRepository(token string) repositories.HostRepository {
	client, err := gl.NewClient(token)
	if err != nil {
		// Return a host that will fail on use rather than panicking at construction
		return &GitLabHostRepository{client: nil, webURL: defaultWebURL}
	}
	return &GitLabHostRepository{client: client, webURL: defaultWebURL}
}

// NewGitLabHostRepositoryWithBaseURL creates a host for a self-managed instance reachable at webURL.
func NewGitLabHostRepositoryWithBaseURL(token, webURL string) (*GitLabHostRepository, error) {
	webURL = strings.TrimSuffix(webURL, "/")
	client, err := gl.NewClient(token, gl.WithBaseURL(webURL+"/api/v4"))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	return &GitLabHostRepository{client: client, webURL: webURL}, nil
}

func (it *GitLabHostRepository) Server() entities.ServerType { return entities.ServerGitLab }

// EnsureRemoteRepo creates owner/name initialised with a README when GitLab does not know it.
func (it *GitLabHostRepository) EnsureRemoteRepo(
	ctx context.Context,
	owner, name string,
	ownerType entities.OwnerType,
) error {
	if it.client == nil {
		return errClientNotInitialized
	}

	_, resp, err := it.client.Projects.GetProject(owner+"/"+name, nil, gl.WithContext(ctx))
	if err == nil {
		logger.Debugf("Project %s/%s already exists on GitLab", owner, name)
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("failed to look up project %s/%s: %w", owner, name, err)
	}

	//nolint:exhaustruct // Remaining project settings keep the instance defaults
	opts := &gl.CreateProjectOptions{
		Name:                 gl.Ptr(name),
		InitializeWithReadme: gl.Ptr(true),
	}
	if ownerType == entities.OwnerOrganization {
		group, _, groupErr := it.client.Groups.GetGroup(owner, nil, gl.WithContext(ctx))
		if groupErr != nil {
			return fmt.Errorf("failed to look up group %q: %w", owner, groupErr)
		}
		opts.NamespaceID = gl.Ptr(group.ID)
	}

	if _, _, err = it.client.Projects.CreateProject(opts, gl.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to create project %s/%s: %w", owner, name, err)
	}
	logger.Infof("Created project %s/%s on GitLab", owner, name)
	return nil
}

func (it *GitLabHostRepository) GetUser(ctx context.Context) (*entities.HostAccount, error) {
	if it.client == nil {
		return nil, errClientNotInitialized
	}
	user, _, err := it.client.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return &entities.HostAccount{Login: user.Username}, nil
}

// GetOrgs lists the groups the user can push to.
func (it *GitLabHostRepository) GetOrgs(ctx context.Context) ([]entities.HostAccount, error) {
	if it.client == nil {
		return nil, errClientNotInitialized
	}

	var accounts []entities.HostAccount
	//nolint:exhaustruct // Only pagination and access level filters are needed
	opts := &gl.ListGroupsOptions{
		ListOptions:    gl.ListOptions{PerPage: perPage},
		MinAccessLevel: gl.Ptr(gl.DeveloperPermissions),
	}
	for {
		groups, resp, err := it.client.Groups.ListGroups(opts, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list groups: %w", err)
		}
		for _, group := range groups {
			accounts = append(accounts, entities.HostAccount{Login: group.FullPath})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return accounts, nil
}

func (it *GitLabHostRepository) GetRemoteURL(owner, name string) string {
	return fmt.Sprintf("%s/%s/%s.git", it.webURL, owner, name)
}

func (it *GitLabHostRepository) GetTokenHelpURL() string { return tokenHelpURL }
