package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ReleaseType is the semver component bumped when a release already covers the local version.
type ReleaseType string

const (
	ReleasePatch ReleaseType = "patch"
	ReleaseMinor ReleaseType = "minor"
	ReleaseMajor ReleaseType = "major"
)

// ReleaseTypes returns the increments offered to the operator, in display order.
func ReleaseTypes() []ReleaseType {
	return []ReleaseType{ReleasePatch, ReleaseMinor, ReleaseMajor}
}

// ParseVersion parses raw as a strict semantic version, accepting the "v" and "="
// prefixes npm tolerates. Source names the file it was read from.
func ParseVersion(raw, source string) (*semver.Version, error) {
	version, err := parseStrict(raw)
	if err != nil {
		return nil, &InvalidVersionError{Value: raw, Source: source, Err: err}
	}
	return version, nil
}

// Increment returns a copy of version bumped by releaseType.
func Increment(version *semver.Version, releaseType ReleaseType) (*semver.Version, error) {
	var next semver.Version
	switch releaseType {
	case ReleasePatch:
		next = version.IncPatch()
	case ReleaseMinor:
		next = version.IncMinor()
	case ReleaseMajor:
		next = version.IncMajor()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReleaseType, releaseType)
	}
	return &next, nil
}

// LatestVersion returns the greatest entry of raws, skipping the ones that are not strict semver.
// It returns nil when no entry parses.
func LatestVersion(raws []string) *semver.Version {
	var latest *semver.Version
	for _, raw := range raws {
		version, err := parseStrict(raw)
		if err != nil {
			continue
		}
		if latest == nil || version.GreaterThan(latest) {
			latest = version
		}
	}
	return latest
}

// ContainsVersion reports whether any valid entry of raws equals version.
func ContainsVersion(raws []string, version *semver.Version) bool {
	for _, raw := range raws {
		candidate, err := parseStrict(raw)
		if err != nil {
			continue
		}
		if candidate.Equal(version) {
			return true
		}
	}
	return false
}

func parseStrict(raw string) (*semver.Version, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 1 && (trimmed[0] == 'v' || trimmed[0] == '=') {
		trimmed = trimmed[1:]
	}
	return semver.StrictNewVersion(trimmed)
}
