package commands

// LinkRemote exports linkRemote for testing.
var LinkRemote = linkRemote //nolint:gochecknoglobals // test export

// EnsureGitVersion exports ensureGitVersion for testing.
var EnsureGitVersion = ensureGitVersion //nolint:gochecknoglobals // test export
