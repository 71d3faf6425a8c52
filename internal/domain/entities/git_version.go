package entities

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// DefaultMinGitVersion is the oldest git release providing every sub-command the workflow runs.
const DefaultMinGitVersion = "2.20.0"

// EnsureGitVersion returns ErrGitTooOld when actual is older than minimum.
// Both arguments are dotted numeric versions such as "2.39.3".
func EnsureGitVersion(actual, minimum string) error {
	current := "v" + actual
	if !semver.IsValid(current) {
		return fmt.Errorf("unrecognized git version %q", actual)
	}
	required := "v" + minimum
	if !semver.IsValid(required) {
		return fmt.Errorf("invalid minimum git version %q", minimum)
	}
	if semver.Compare(current, required) < 0 {
		return fmt.Errorf("%w: found %s, need %s or newer", ErrGitTooOld, actual, minimum)
	}
	return nil
}
