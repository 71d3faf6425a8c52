package commands

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// WorkflowInput is what a commit workflow run starts from.
type WorkflowInput struct {
	Project    *entities.ProjectConfig
	Version    *semver.Version
	Production bool
}

// WorkflowResult records what a commit workflow run did.
type WorkflowResult struct {
	Decision  *entities.BranchDecision
	Aborted   bool
	Committed bool
	Pushed    bool
	Released  bool
	Warnings  []*entities.RemoteUnavailableWarning
}

// CommitWorkflow drives the working copy from its current state to a commit on
// the right develop branch and, in production mode, to a release on the main branch.
//
// Network steps (ls-remote, pull, push) only log a warning when they fail.
// Conflicts and local git failures abort the run; nothing is rolled back.
type CommitWorkflow struct {
	settings *entities.Settings
	git      repositories.GitRepository
	versions repositories.VersionRepository
	prompter repositories.PromptRepository
	log      *logger.Entry
}

// NewCommitWorkflow creates a workflow for one run over git.
func NewCommitWorkflow(
	settings *entities.Settings,
	git repositories.GitRepository,
	versions repositories.VersionRepository,
	prompter repositories.PromptRepository,
) *CommitWorkflow {
	return &CommitWorkflow{
		settings: settings,
		git:      git,
		versions: versions,
		prompter: prompter,
		log:      logger.WithField("run", uuid.NewString()),
	}
}

// Run executes every step in order and stops at the first fatal error.
func (it *CommitWorkflow) Run(ctx context.Context, input WorkflowInput) (*WorkflowResult, error) {
	result := &WorkflowResult{}

	proceed, err := it.guardCurrentBranch()
	if err != nil {
		return result, err
	}
	if !proceed {
		result.Aborted = true
		return result, nil
	}

	if err = it.restoreStash(ctx); err != nil {
		return result, err
	}
	if err = it.checkConflicts(ctx); err != nil {
		return result, err
	}

	decision, err := it.resolveBranch(ctx, result, input.Project, input.Version)
	if err != nil {
		return result, err
	}
	result.Decision = decision

	if err = it.switchBranch(ctx, decision.BranchName); err != nil {
		return result, err
	}

	it.pull(ctx, result, it.settings.MainBranch)
	if err = it.checkConflicts(ctx); err != nil {
		return result, err
	}
	if decision.RemoteBranchExists {
		it.pull(ctx, result, decision.BranchName)
		if err = it.checkConflicts(ctx); err != nil {
			return result, err
		}
	}

	if result.Committed, err = it.stageAndCommit(ctx); err != nil {
		return result, err
	}
	if result.Committed {
		result.Pushed = it.push(ctx, result, decision.BranchName)
	} else {
		it.log.Info("No changes to commit, skipping push")
	}

	if input.Production {
		if err = it.release(ctx, result, decision); err != nil {
			return result, err
		}
		result.Released = true
	}
	return result, nil
}

func (it *CommitWorkflow) guardCurrentBranch() (bool, error) {
	current, err := it.git.CurrentBranch()
	if err != nil {
		return false, fmt.Errorf("failed to read current branch: %w", err)
	}
	if entities.IsDevelopBranch(current) {
		return true, nil
	}

	it.prompter.Warn(fmt.Sprintf(
		"You are on %q, not on a %s/<version> branch. Commits already made here will not be moved: "+
			"undo them with `git reset --soft` first if they belong to the next version.",
		current, entities.DevelopPrefix,
	))
	proceed, err := it.prompter.Confirm("Continue?", true)
	if err != nil {
		return false, fmt.Errorf("failed to confirm current branch: %w", err)
	}
	return proceed, nil
}

func (it *CommitWorkflow) restoreStash(ctx context.Context) error {
	count, err := it.git.StashCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stash: %w", err)
	}
	if count == 0 {
		return nil
	}
	it.log.Infof("Restoring %d stash entries", count)
	if err = it.git.StashPop(ctx); err != nil {
		return fmt.Errorf("failed to pop stash: %w", err)
	}
	return nil
}

func (it *CommitWorkflow) checkConflicts(ctx context.Context) error {
	status, err := it.git.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read working copy status: %w", err)
	}
	if status.HasConflicts() {
		return &entities.MergeConflictError{Paths: status.Conflicted}
	}
	return nil
}

func (it *CommitWorkflow) resolveBranch(
	ctx context.Context,
	result *WorkflowResult,
	project *entities.ProjectConfig,
	local *semver.Version,
) (*entities.BranchDecision, error) {
	output, err := it.git.ListRemoteRefs(ctx, it.settings.Remote)
	if err != nil {
		it.warn(result, &entities.RemoteUnavailableWarning{Operation: "ls-remote", Ref: it.settings.Remote, Err: err})
		output = ""
	}
	refs := entities.ParseRemoteRefs(output)

	decision, err := entities.ResolveBranch(local, refs.ReleaseVersions(), refs.DevelopVersions(), it.selectIncrement)
	if err != nil {
		return nil, err
	}
	it.log.Infof("Working on %s", decision.BranchName)

	if decision.VersionChanged {
		if _, err = it.versions.SaveVersion(project, decision.Version.String()); err != nil {
			return nil, fmt.Errorf("failed to save version %s: %w", decision.Version, err)
		}
	}
	return decision, nil
}

func (it *CommitWorkflow) selectIncrement(
	release *semver.Version,
	options []entities.IncrementOption,
) (entities.ReleaseType, error) {
	promptOptions := make([]repositories.PromptOption, 0, len(options))
	for _, option := range options {
		promptOptions = append(promptOptions, repositories.PromptOption{
			Label: fmt.Sprintf("%s (%s)", option.Label, option.Type),
			Value: string(option.Type),
		})
	}
	value, err := it.prompter.Select(
		fmt.Sprintf("Version %s is already released, choose the next version", release),
		promptOptions, 0,
	)
	if err != nil {
		return "", err
	}
	return entities.ReleaseType(value), nil
}

func (it *CommitWorkflow) switchBranch(ctx context.Context, branch string) error {
	current, err := it.git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("failed to read current branch: %w", err)
	}
	if current == branch {
		return nil
	}

	exists, err := it.git.BranchExists(branch)
	if err != nil {
		return err
	}
	if exists {
		err = it.git.Checkout(ctx, branch)
	} else {
		it.log.Infof("Creating branch %s", branch)
		err = it.git.CreateBranch(ctx, branch)
	}
	if err != nil {
		return fmt.Errorf("failed to switch to %s: %w", branch, err)
	}
	return nil
}

func (it *CommitWorkflow) pull(ctx context.Context, result *WorkflowResult, branch string) {
	if err := it.git.Pull(ctx, it.settings.Remote, branch); err != nil {
		it.warn(result, &entities.RemoteUnavailableWarning{Operation: "pull", Ref: branch, Err: err})
	}
}

func (it *CommitWorkflow) stageAndCommit(ctx context.Context) (bool, error) {
	status, err := it.git.Status(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read working copy status: %w", err)
	}
	if !status.HasChanges() {
		return false, nil
	}

	it.log.Infof("Staging %d changed paths", len(status.ChangedPaths()))
	if err = it.git.AddAll(ctx); err != nil {
		return false, fmt.Errorf("failed to stage changes: %w", err)
	}

	types := entities.CommitTypes()
	options := make([]repositories.PromptOption, 0, len(types))
	for _, commitType := range types {
		options = append(options, repositories.PromptOption{
			Label: commitType.Value + ": " + commitType.Description,
			Value: commitType.Value,
		})
	}
	commitType, err := it.prompter.Select("Select the type of change", options, 0)
	if err != nil {
		return false, fmt.Errorf("failed to select commit type: %w", err)
	}
	text, err := it.prompter.Input("Commit message:", nil)
	if err != nil {
		return false, fmt.Errorf("failed to read commit message: %w", err)
	}
	message, err := entities.FormatCommitMessage(commitType, text)
	if err != nil {
		return false, err
	}

	if err = it.git.Commit(ctx, message); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	it.log.Infof("Committed %q", message)
	return true, nil
}

func (it *CommitWorkflow) push(ctx context.Context, result *WorkflowResult, ref string) bool {
	if err := it.git.Push(ctx, it.settings.Remote, ref); err != nil {
		it.warn(result, &entities.RemoteUnavailableWarning{Operation: "push", Ref: ref, Err: err})
		return false
	}
	return true
}

// release tags the version, merges the develop branch into main, publishes
// both and switches back to the develop branch.
func (it *CommitWorkflow) release(ctx context.Context, result *WorkflowResult, decision *entities.BranchDecision) error {
	tag := entities.ReleaseTag(decision.Version)
	mainBranch := it.settings.MainBranch

	if err := it.ensureTag(ctx, tag); err != nil {
		return err
	}
	if err := it.switchBranch(ctx, mainBranch); err != nil {
		return err
	}
	if err := it.git.Merge(ctx, decision.BranchName); err != nil {
		return fmt.Errorf("failed to merge %s into %s: %w", decision.BranchName, mainBranch, err)
	}

	it.push(ctx, result, mainBranch)
	it.push(ctx, result, "refs/tags/"+tag)

	if err := it.switchBranch(ctx, decision.BranchName); err != nil {
		return err
	}
	it.log.Infof("Released %s", tag)
	return nil
}

// ensureTag creates tag on HEAD. A tag left by an earlier run whose push
// failed is reused when it already points at HEAD.
func (it *CommitWorkflow) ensureTag(ctx context.Context, tag string) error {
	target, err := it.git.TagCommit(tag)
	if err != nil {
		return fmt.Errorf("failed to look up tag %s: %w", tag, err)
	}
	if target == "" {
		if err = it.git.Tag(ctx, tag); err != nil {
			return fmt.Errorf("failed to tag %s: %w", tag, err)
		}
		return nil
	}

	head, err := it.git.HeadCommit()
	if err != nil {
		return fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head != target {
		return &entities.TagConflictError{Tag: tag, Target: target, Head: head}
	}
	it.log.Infof("Tag %s already exists on HEAD, publishing it again", tag)
	return nil
}

func (it *CommitWorkflow) warn(result *WorkflowResult, warning *entities.RemoteUnavailableWarning) {
	result.Warnings = append(result.Warnings, warning)
	it.log.Warn(warning.Error())
}
