package repositories

import (
	"context"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
)

// GitRepository operates on the working copy of a single directory.
type GitRepository interface {
	Version(ctx context.Context) (string, error)

	IsRepository() bool
	Init() error
	HasRemote(name string) (bool, error)
	AddRemote(name, url string) error

	CurrentBranch() (string, error)
	BranchExists(name string) (bool, error)
	ListRemoteRefs(ctx context.Context, remote string) (string, error)

	StashCount(ctx context.Context) (int, error)
	StashPop(ctx context.Context) error
	Status(ctx context.Context) (*entities.WorkingCopyStatus, error)
	Checkout(ctx context.Context, branch string) error
	CreateBranch(ctx context.Context, branch string) error

	Pull(ctx context.Context, remote, branch string) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, ref string) error
	Tag(ctx context.Context, name string) error
	// TagCommit returns the commit the local tag name points at, or "" when it does not exist.
	TagCommit(name string) (string, error)
	HeadCommit() (string, error)
	Merge(ctx context.Context, branch string) error
}

// GitRepositoryFactory opens the working copy rooted at dir.
type GitRepositoryFactory func(dir string) GitRepository
