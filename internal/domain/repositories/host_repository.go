package repositories

import (
	"context"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

// HostRepository is a hosted git provider.
type HostRepository interface {
	Server() entities.ServerType

	// EnsureRemoteRepo creates owner/name when it does not exist yet.
	EnsureRemoteRepo(ctx context.Context, owner, name string, ownerType entities.OwnerType) error
	GetUser(ctx context.Context) (*entities.HostAccount, error)
	GetOrgs(ctx context.Context) ([]entities.HostAccount, error)
	GetRemoteURL(owner, name string) string
	GetTokenHelpURL() string
}

// HostRepositoryFactory builds a HostRepository for a server authenticated with token.
type HostRepositoryFactory interface {
	Get(server entities.ServerType, token string) (HostRepository, error)
	Servers() []entities.ServerType
}
