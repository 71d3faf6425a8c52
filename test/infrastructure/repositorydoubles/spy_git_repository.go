//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"errors"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository in memory and
// records every mutating call as a short "verb args" string.
type SpyGitRepository struct {
	// --- Version ---
	GitVersion string
	VersionErr error

	// --- repository and remotes ---
	Repository bool
	InitErr    error
	Remotes    map[string]string

	// --- branches and commits ---
	Branch   string
	Branches map[string]bool
	Head     string
	HeadErr  error

	// --- tags: name -> commit ---
	Tags         map[string]string
	TagLookupErr error

	// --- ListRemoteRefs ---
	RemoteRefs    string
	RemoteRefsErr error

	// --- stash ---
	StashEntries int
	StashPopErr  error

	// --- Status: each call consumes the next entry, the last one repeats ---
	Statuses  []entities.WorkingCopyStatus
	StatusErr error

	// --- failures keyed by branch or ref ---
	PullErrs    map[string]error
	PushErrs    map[string]error
	CheckoutErr error
	AddErr      error
	CommitErr   error
	TagErr      error
	MergeErr    error

	// --- spy ---
	Calls          []string
	CommitMessages []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

// NewSpyGitRepository creates an initialised repository on branch with the given status.
func NewSpyGitRepository(branch string, statuses ...entities.WorkingCopyStatus) *SpyGitRepository {
	return &SpyGitRepository{
		GitVersion: "2.44.0",
		Repository: true,
		Remotes:    map[string]string{"origin": "https://example.com/octocat/demo.git"},
		Branch:     branch,
		Branches:   map[string]bool{branch: true},
		Head:       "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
		Tags:       map[string]string{},
		Statuses:   statuses,
		PullErrs:   map[string]error{},
		PushErrs:   map[string]error{},
	}
}

func (g *SpyGitRepository) record(call string) { g.Calls = append(g.Calls, call) }

func (g *SpyGitRepository) Version(_ context.Context) (string, error) {
	return g.GitVersion, g.VersionErr
}

func (g *SpyGitRepository) IsRepository() bool { return g.Repository }

func (g *SpyGitRepository) Init() error {
	g.record("init")
	if g.InitErr != nil {
		return g.InitErr
	}
	g.Repository = true
	return nil
}

func (g *SpyGitRepository) HasRemote(name string) (bool, error) {
	_, ok := g.Remotes[name]
	return ok, nil
}

func (g *SpyGitRepository) AddRemote(name, url string) error {
	g.record("remote add " + name + " " + url)
	if g.Remotes == nil {
		g.Remotes = map[string]string{}
	}
	g.Remotes[name] = url
	return nil
}

func (g *SpyGitRepository) CurrentBranch() (string, error) { return g.Branch, nil }

func (g *SpyGitRepository) BranchExists(name string) (bool, error) { return g.Branches[name], nil }

func (g *SpyGitRepository) ListRemoteRefs(_ context.Context, remote string) (string, error) {
	g.record("ls-remote " + remote)
	return g.RemoteRefs, g.RemoteRefsErr
}

func (g *SpyGitRepository) StashCount(_ context.Context) (int, error) { return g.StashEntries, nil }

func (g *SpyGitRepository) StashPop(_ context.Context) error {
	g.record("stash pop")
	if g.StashPopErr != nil {
		return g.StashPopErr
	}
	g.StashEntries--
	return nil
}

func (g *SpyGitRepository) Status(_ context.Context) (*entities.WorkingCopyStatus, error) {
	if g.StatusErr != nil {
		return nil, g.StatusErr
	}
	if len(g.Statuses) == 0 {
		return &entities.WorkingCopyStatus{}, nil
	}
	status := g.Statuses[0]
	if len(g.Statuses) > 1 {
		g.Statuses = g.Statuses[1:]
	}
	return &status, nil
}

func (g *SpyGitRepository) Checkout(_ context.Context, branch string) error {
	g.record("checkout " + branch)
	if g.CheckoutErr != nil {
		return g.CheckoutErr
	}
	if !g.Branches[branch] {
		return errors.New("pathspec '" + branch + "' did not match any file(s) known to git")
	}
	g.Branch = branch
	return nil
}

func (g *SpyGitRepository) CreateBranch(_ context.Context, branch string) error {
	g.record("checkout -b " + branch)
	g.Branches[branch] = true
	g.Branch = branch
	return nil
}

func (g *SpyGitRepository) Pull(_ context.Context, remote, branch string) error {
	g.record("pull " + remote + " " + branch)
	return g.PullErrs[branch]
}

func (g *SpyGitRepository) AddAll(_ context.Context) error {
	g.record("add -A")
	return g.AddErr
}

func (g *SpyGitRepository) Commit(_ context.Context, message string) error {
	g.record("commit")
	if g.CommitErr != nil {
		return g.CommitErr
	}
	g.CommitMessages = append(g.CommitMessages, message)
	return nil
}

func (g *SpyGitRepository) Push(_ context.Context, remote, ref string) error {
	g.record("push " + remote + " " + ref)
	return g.PushErrs[ref]
}

func (g *SpyGitRepository) Tag(_ context.Context, name string) error {
	g.record("tag " + name)
	if g.TagErr != nil {
		return g.TagErr
	}
	g.Tags[name] = g.Head
	return nil
}

func (g *SpyGitRepository) TagCommit(name string) (string, error) {
	return g.Tags[name], g.TagLookupErr
}

func (g *SpyGitRepository) HeadCommit() (string, error) { return g.Head, g.HeadErr }

func (g *SpyGitRepository) Merge(_ context.Context, branch string) error {
	g.record("merge " + branch)
	return g.MergeErr
}
