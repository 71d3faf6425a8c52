//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// SpyHostRepository implements repositories.HostRepository as a configurable spy.
type SpyHostRepository struct {
	// --- identity ---
	ServerType entities.ServerType
	HelpURL    string

	// --- EnsureRemoteRepo ---
	EnsureErr   error
	EnsureCalls []EnsureRemoteRepoCall

	// --- GetUser / GetOrgs ---
	User    entities.HostAccount
	UserErr error
	Orgs    []entities.HostAccount
	OrgsErr error
}

// EnsureRemoteRepoCall records the arguments of one EnsureRemoteRepo call.
type EnsureRemoteRepoCall struct {
	Owner     string
	Name      string
	OwnerType entities.OwnerType
}

var _ repositories.HostRepository = (*SpyHostRepository)(nil)

func (h *SpyHostRepository) Server() entities.ServerType { return h.ServerType }

func (h *SpyHostRepository) EnsureRemoteRepo(
	_ context.Context,
	owner, name string,
	ownerType entities.OwnerType,
) error {
	h.EnsureCalls = append(h.EnsureCalls, EnsureRemoteRepoCall{Owner: owner, Name: name, OwnerType: ownerType})
	return h.EnsureErr
}

func (h *SpyHostRepository) GetUser(_ context.Context) (*entities.HostAccount, error) {
	if h.UserErr != nil {
		return nil, h.UserErr
	}
	user := h.User
	return &user, nil
}

func (h *SpyHostRepository) GetOrgs(_ context.Context) ([]entities.HostAccount, error) {
	return h.Orgs, h.OrgsErr
}

func (h *SpyHostRepository) GetRemoteURL(owner, name string) string {
	return fmt.Sprintf("https://example.com/%s/%s.git", owner, name)
}

func (h *SpyHostRepository) GetTokenHelpURL() string { return h.HelpURL }

// StubHostRepositoryFactory implements repositories.HostRepositoryFactory over a fixed set of spies.
type StubHostRepositoryFactory struct {
	Hosts           map[entities.ServerType]*SpyHostRepository
	RequestedTokens []string
}

var _ repositories.HostRepositoryFactory = (*StubHostRepositoryFactory)(nil)

// NewStubHostRepositoryFactory creates a factory holding one spy per server type.
func NewStubHostRepositoryFactory() *StubHostRepositoryFactory {
	return &StubHostRepositoryFactory{
		Hosts: map[entities.ServerType]*SpyHostRepository{
			entities.ServerGitHub: {ServerType: entities.ServerGitHub, HelpURL: "https://github.com/settings/tokens"},
			entities.ServerGitee:  {ServerType: entities.ServerGitee, HelpURL: "https://gitee.com/profile/personal_access_tokens"},
			entities.ServerGitLab: {ServerType: entities.ServerGitLab, HelpURL: "https://gitlab.com/-/user_settings/personal_access_tokens"},
		},
	}
}

func (f *StubHostRepositoryFactory) Get(server entities.ServerType, token string) (repositories.HostRepository, error) {
	host, ok := f.Hosts[server]
	if !ok {
		return nil, fmt.Errorf("unknown server type: %q", server)
	}
	f.RequestedTokens = append(f.RequestedTokens, token)
	return host, nil
}

func (f *StubHostRepositoryFactory) Servers() []entities.ServerType {
	return []entities.ServerType{entities.ServerGitHub, entities.ServerGitee, entities.ServerGitLab}
}
