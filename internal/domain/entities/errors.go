package entities

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidVersionError is returned when a version string does not follow the semver grammar.
type InvalidVersionError struct {
	Value  string
	Source string
	Err    error
}

func (e *InvalidVersionError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid version %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid version %q in %s: %v", e.Value, e.Source, e.Err)
}

func (e *InvalidVersionError) Unwrap() error { return e.Err }

// MergeConflictError is returned when the working copy has unresolved conflicts.
type MergeConflictError struct {
	Paths []string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf(
		"merge conflicts must be resolved before committing: %s",
		strings.Join(e.Paths, ", "),
	)
}

// EmptyCommitMessageError is returned when the operator provides a blank commit message.
type EmptyCommitMessageError struct{}

func (e *EmptyCommitMessageError) Error() string {
	return "commit message must not be empty"
}

// RemoteUnavailableWarning describes a network operation that failed without aborting the workflow.
type RemoteUnavailableWarning struct {
	Operation string
	Ref       string
	Err       error
}

func (e *RemoteUnavailableWarning) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("remote unavailable during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("remote unavailable during %s of %q: %v", e.Operation, e.Ref, e.Err)
}

func (e *RemoteUnavailableWarning) Unwrap() error { return e.Err }

// TagConflictError is returned when a release tag already exists on a commit other than HEAD.
type TagConflictError struct {
	Tag    string
	Target string
	Head   string
}

func (e *TagConflictError) Error() string {
	return fmt.Sprintf(
		"tag %s already points at %s, not at HEAD (%s): delete or move it before releasing",
		e.Tag, shortHash(e.Target), shortHash(e.Head),
	)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// ConfigIncompleteError lists the repository configuration fields still missing.
type ConfigIncompleteError struct {
	Repo    string
	Missing []string
}

func (e *ConfigIncompleteError) Error() string {
	return fmt.Sprintf(
		"configuration of repository %q is incomplete, missing: %s",
		e.Repo, strings.Join(e.Missing, ", "),
	)
}

// ErrUnknownReleaseType is returned when an increment other than patch, minor or major is requested.
var ErrUnknownReleaseType = errors.New("unknown release type")

// ErrGitTooOld is returned when the installed git binary is older than the supported minimum.
var ErrGitTooOld = errors.New("git version is not supported")
