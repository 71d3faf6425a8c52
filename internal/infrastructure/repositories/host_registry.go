package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	domainRepos "github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// HostFactory creates a HostRepository for an auth token. baseURL is the API
// root configured for the server, or empty for the public service.
type HostFactory func(token, baseURL string) (domainRepos.HostRepository, error)

// HostRegistry manages all registered hosting provider implementations.
type HostRegistry struct {
	hosts    map[entities.ServerType]HostFactory
	baseURLs map[entities.ServerType]string
}

// NewHostRegistry creates an empty host registry whose hosts talk to baseURLs when set.
func NewHostRegistry(baseURLs map[entities.ServerType]string) *HostRegistry {
	return &HostRegistry{
		hosts:    make(map[entities.ServerType]HostFactory),
		baseURLs: baseURLs,
	}
}

// Register adds a host factory under the given server type (e.g. "GITHUB").
func (r *HostRegistry) Register(server entities.ServerType, factory HostFactory) {
	r.hosts[server] = factory
}

// Get returns a configured host instance for the given server type and token.
func (r *HostRegistry) Get(server entities.ServerType, token string) (domainRepos.HostRepository, error) {
	factory, ok := r.hosts[server]
	if !ok {
		return nil, fmt.Errorf("unknown server type: %q", server)
	}
	host, err := factory(token, r.baseURLs[server])
	if err != nil {
		return nil, fmt.Errorf("failed to create %s host: %w", server.Label(), err)
	}
	return host, nil
}

// hostFactory builds the public host, or the one behind baseURL when it is configured.
func hostFactory[T domainRepos.HostRepository](
	public func(token string) domainRepos.HostRepository,
	at func(token, baseURL string) (T, error),
) HostFactory {
	return func(token, baseURL string) (domainRepos.HostRepository, error) {
		if baseURL == "" {
			return public(token), nil
		}
		host, err := at(token, baseURL)
		if err != nil {
			return nil, err
		}
		return host, nil
	}
}

// Servers returns the registered server types, GitHub first and the rest in name order.
func (r *HostRegistry) Servers() []entities.ServerType {
	servers := make([]entities.ServerType, 0, len(r.hosts))
	for server := range r.hosts {
		servers = append(servers, server)
	}
	sort.Slice(servers, func(i, j int) bool {
		if servers[i] == entities.ServerGitHub || servers[j] == entities.ServerGitHub {
			return servers[i] == entities.ServerGitHub
		}
		return servers[i] < servers[j]
	})
	return servers
}
