package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	DevelopPrefix = "develop"
	ReleasePrefix = "release"
)

// BranchDecision is the branch and version a commit workflow run works on.
type BranchDecision struct {
	BranchName         string
	Version            *semver.Version
	VersionChanged     bool
	ReleaseVersion     *semver.Version
	RemoteBranchExists bool
}

// IncrementOption is one choice offered when the local version is already released.
type IncrementOption struct {
	Type    ReleaseType
	Version *semver.Version
	Label   string
}

// IncrementSelector picks one of options for the given latest release.
type IncrementSelector func(release *semver.Version, options []IncrementOption) (ReleaseType, error)

// DevelopBranch returns the develop branch name for version.
func DevelopBranch(version *semver.Version) string {
	return DevelopPrefix + "/" + version.String()
}

// ReleaseTag returns the release tag name for version.
func ReleaseTag(version *semver.Version) string {
	return ReleasePrefix + "/" + version.String()
}

// IsDevelopBranch reports whether name follows the develop/<version> convention.
func IsDevelopBranch(name string) bool {
	return strings.HasPrefix(name, DevelopPrefix+"/")
}

// IncrementOptions lists the patch, minor and major bumps of release.
func IncrementOptions(release *semver.Version) []IncrementOption {
	types := ReleaseTypes()
	options := make([]IncrementOption, 0, len(types))
	for _, releaseType := range types {
		next, _ := Increment(release, releaseType)
		options = append(options, IncrementOption{
			Type:    releaseType,
			Version: next,
			Label:   fmt.Sprintf("%s => %s", release, next),
		})
	}
	return options
}

// ResolveBranch decides which develop branch a commit goes to.
// The local version wins when it is newer than every remote release; otherwise
// selectIncrement chooses how to bump the latest release. Release and develop
// entries that are not strict semver are ignored.
func ResolveBranch(
	local *semver.Version,
	releases, develops []string,
	selectIncrement IncrementSelector,
) (*BranchDecision, error) {
	decision := &BranchDecision{Version: local}

	release := LatestVersion(releases)
	decision.ReleaseVersion = release
	if release != nil && !local.GreaterThan(release) {
		options := IncrementOptions(release)
		selected, err := selectIncrement(release, options)
		if err != nil {
			return nil, fmt.Errorf("failed to select release increment: %w", err)
		}
		next, err := Increment(release, selected)
		if err != nil {
			return nil, err
		}
		decision.Version = next
		decision.VersionChanged = true
	}

	decision.BranchName = DevelopBranch(decision.Version)
	decision.RemoteBranchExists = ContainsVersion(develops, decision.Version)
	return decision, nil
}
