package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	gitops "github.com/rios0rios0/gitforge/pkg/git/infrastructure"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

const (
	gitBinary         = "git"
	initialBranchName = "main"
)

// GitError carries the arguments and combined output of a failed git invocation.
type GitError struct {
	Args   []string
	Output string
	Err    error
}

func (e *GitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Output)
}

func (e *GitError) Unwrap() error { return e.Err }

// GitCLIRepository implements repositories.GitRepository. Repository metadata
// (init, remotes, branches, tags) goes through go-git; operations that need the
// user's credential helpers or a three-way merge shell out to the git binary.
type GitCLIRepository struct {
	dir    string
	binary string
	repo   *gitlib.Repository
}

// NewGitRepository opens the working copy rooted at dir.
func NewGitRepository(dir string) repositories.GitRepository {
	return &GitCLIRepository{dir: dir, binary: gitBinary}
}

func (it *GitCLIRepository) run(ctx context.Context, args ...string) (string, error) {
	cmdArgs := append([]string{"-C", it.dir}, args...)
	logger.Debugf("Running: git %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, it.binary, cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		return "", &GitError{Args: args, Output: output, Err: err}
	}
	return stdout.String(), nil
}

// open returns the go-git handle of the working copy, opened once. References
// are read from disk on every lookup, so the handle never goes stale.
func (it *GitCLIRepository) open() (*gitlib.Repository, error) {
	if it.repo != nil {
		return it.repo, nil
	}
	repo, err := gitops.OpenRepo(it.dir)
	if err != nil {
		return nil, err
	}
	it.repo = repo
	return repo, nil
}

// Version returns the dotted version of the git binary, e.g. "2.39.3".
func (it *GitCLIRepository) Version(ctx context.Context) (string, error) {
	output, err := it.run(ctx, "version")
	if err != nil {
		return "", err
	}
	version, ok := parseVersionOutput(output)
	if !ok {
		return "", fmt.Errorf("unexpected git version output %q", strings.TrimSpace(output))
	}
	return version, nil
}

func (it *GitCLIRepository) IsRepository() bool {
	_, err := it.open()
	return err == nil
}

func (it *GitCLIRepository) Init() error {
	//nolint:exhaustruct // Only the default branch is customised
	repo, err := gitlib.PlainInitWithOptions(it.dir, &gitlib.PlainInitOptions{
		InitOptions: gitlib.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(initialBranchName),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize repository at %q: %w", it.dir, err)
	}
	it.repo = repo
	return nil
}

func (it *GitCLIRepository) HasRemote(name string) (bool, error) {
	repo, err := it.open()
	if err != nil {
		return false, err
	}
	if _, err = repo.Remote(name); err != nil {
		if errors.Is(err, gitlib.ErrRemoteNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read remote %q: %w", name, err)
	}
	return true, nil
}

func (it *GitCLIRepository) AddRemote(name, url string) error {
	repo, err := it.open()
	if err != nil {
		return err
	}
	//nolint:exhaustruct // Fetch refspecs are derived by go-git
	if _, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	}); err != nil {
		return fmt.Errorf("failed to add remote %q: %w", name, err)
	}
	return nil
}

// CurrentBranch returns the short name of the checked out branch, including
// an unborn branch of a repository without commits.
func (it *GitCLIRepository) CurrentBranch() (string, error) {
	repo, err := it.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return plumbing.HEAD.String(), nil
}

// BranchExists reports a local branch or an origin remote-tracking branch;
// `git checkout` creates the local branch from the latter.
func (it *GitCLIRepository) BranchExists(name string) (bool, error) {
	repo, err := it.open()
	if err != nil {
		return false, err
	}
	return gitops.CheckBranchExists(repo, name)
}

func (it *GitCLIRepository) HeadCommit() (string, error) {
	repo, err := it.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// TagCommit resolves lightweight and annotated tags to the commit they point at.
func (it *GitCLIRepository) TagCommit(name string) (string, error) {
	repo, err := it.open()
	if err != nil {
		return "", err
	}
	ref, err := repo.Tag(name)
	if err != nil {
		if errors.Is(err, gitlib.ErrTagNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up tag %q: %w", name, err)
	}

	annotated, err := repo.TagObject(ref.Hash())
	if errors.Is(err, plumbing.ErrObjectNotFound) {
		return ref.Hash().String(), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read tag %q: %w", name, err)
	}
	commit, err := annotated.Commit()
	if err != nil {
		return "", fmt.Errorf("tag %q does not point at a commit: %w", name, err)
	}
	return commit.Hash.String(), nil
}

func (it *GitCLIRepository) ListRemoteRefs(ctx context.Context, remote string) (string, error) {
	return it.run(ctx, "ls-remote", "--refs", remote)
}

func (it *GitCLIRepository) StashCount(ctx context.Context) (int, error) {
	output, err := it.run(ctx, "stash", "list")
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}

func (it *GitCLIRepository) StashPop(ctx context.Context) error {
	_, err := it.run(ctx, "stash", "pop")
	return err
}

func (it *GitCLIRepository) Status(ctx context.Context) (*entities.WorkingCopyStatus, error) {
	output, err := it.run(ctx, "status", "--porcelain=v2", "-z", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	return parseStatusPorcelainV2(strings.NewReader(output))
}

func (it *GitCLIRepository) Checkout(ctx context.Context, branch string) error {
	_, err := it.run(ctx, "checkout", branch)
	return err
}

func (it *GitCLIRepository) CreateBranch(ctx context.Context, branch string) error {
	_, err := it.run(ctx, "checkout", "-b", branch)
	return err
}

func (it *GitCLIRepository) Pull(ctx context.Context, remote, branch string) error {
	_, err := it.run(ctx, "pull", remote, branch, "--no-rebase", "--allow-unrelated-histories")
	return err
}

func (it *GitCLIRepository) AddAll(ctx context.Context) error {
	_, err := it.run(ctx, "add", "-A")
	return err
}

func (it *GitCLIRepository) Commit(ctx context.Context, message string) error {
	_, err := it.run(ctx, "commit", "-m", message)
	return err
}

func (it *GitCLIRepository) Push(ctx context.Context, remote, ref string) error {
	_, err := it.run(ctx, "push", remote, ref)
	return err
}

func (it *GitCLIRepository) Tag(ctx context.Context, name string) error {
	_, err := it.run(ctx, "tag", name)
	return err
}

func (it *GitCLIRepository) Merge(ctx context.Context, branch string) error {
	_, err := it.run(ctx, "merge", "--no-edit", branch)
	return err
}
