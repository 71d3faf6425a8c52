package entities

// ServerType names the hosting provider a repository lives on.
type ServerType string

const (
	ServerGitHub ServerType = "GITHUB"
	ServerGitee  ServerType = "GITEE"
	ServerGitLab ServerType = "GITLAB"
)

// OwnerType says whether a repository belongs to the authenticated user or to an organisation.
type OwnerType string

const (
	OwnerUser         OwnerType = "REPO_OWNER_USER"
	OwnerOrganization OwnerType = "REPO_OWNER_ORG"
)

// RepoConfig is the persisted hosting configuration of one repository.
type RepoConfig struct {
	Server    ServerType `json:"server,omitempty"`
	Token     string     `json:"token,omitempty"`
	OwnerType OwnerType  `json:"ownerType,omitempty"`
	BelongTo  string     `json:"belongTo,omitempty"`
}

// CommitConfig maps repository names to their configuration.
type CommitConfig map[string]RepoConfig

// Missing lists the fields that still need to be configured.
func (c RepoConfig) Missing() []string {
	var missing []string
	if c.Server == "" {
		missing = append(missing, "server")
	}
	if c.Token == "" {
		missing = append(missing, "token")
	}
	if c.OwnerType == "" {
		missing = append(missing, "ownerType")
	}
	if c.BelongTo == "" {
		missing = append(missing, "belongTo")
	}
	return missing
}

// Validate returns a ConfigIncompleteError naming repo when any field is missing.
func (c RepoConfig) Validate(repo string) error {
	if missing := c.Missing(); len(missing) > 0 {
		return &ConfigIncompleteError{Repo: repo, Missing: missing}
	}
	return nil
}

// Label returns the display name of the server.
func (s ServerType) Label() string {
	switch s {
	case ServerGitHub:
		return "GitHub"
	case ServerGitee:
		return "Gitee"
	case ServerGitLab:
		return "GitLab"
	default:
		return string(s)
	}
}
