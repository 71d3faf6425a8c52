//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepoConfigBuilder helps create repository configurations with a fluent interface.
type RepoConfigBuilder struct {
	*testkit.BaseBuilder
	server    entities.ServerType
	token     string
	ownerType entities.OwnerType
	belongTo  string
}

// NewRepoConfigBuilder creates a builder for a complete GitHub user configuration.
func NewRepoConfigBuilder() *RepoConfigBuilder {
	return &RepoConfigBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		server:      entities.ServerGitHub,
		token:       "test-token",
		ownerType:   entities.OwnerUser,
		belongTo:    "octocat",
	}
}

// WithServer sets the hosting provider.
func (b *RepoConfigBuilder) WithServer(server entities.ServerType) *RepoConfigBuilder {
	b.server = server
	return b
}

// WithToken sets the access token.
func (b *RepoConfigBuilder) WithToken(token string) *RepoConfigBuilder {
	b.token = token
	return b
}

// WithOwnerType sets whether the repository belongs to a user or an organisation.
func (b *RepoConfigBuilder) WithOwnerType(ownerType entities.OwnerType) *RepoConfigBuilder {
	b.ownerType = ownerType
	return b
}

// WithBelongTo sets the owning account.
func (b *RepoConfigBuilder) WithBelongTo(belongTo string) *RepoConfigBuilder {
	b.belongTo = belongTo
	return b
}

// Build creates the configuration (satisfies testkit.Builder interface).
func (b *RepoConfigBuilder) Build() interface{} {
	return b.BuildRepoConfig()
}

// BuildRepoConfig creates the configuration with a concrete return type.
func (b *RepoConfigBuilder) BuildRepoConfig() entities.RepoConfig {
	return entities.RepoConfig{
		Server:    b.server,
		Token:     b.token,
		OwnerType: b.ownerType,
		BelongTo:  b.belongTo,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.server = entities.ServerGitHub
	b.token = "test-token"
	b.ownerType = entities.OwnerUser
	b.belongTo = "octocat"
	return b
}

// Clone creates a deep copy of the RepoConfigBuilder.
func (b *RepoConfigBuilder) Clone() testkit.Builder {
	return &RepoConfigBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		server:      b.server,
		token:       b.token,
		ownerType:   b.ownerType,
		belongTo:    b.belongTo,
	}
}
