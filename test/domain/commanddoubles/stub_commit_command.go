//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
)

// StubCommitCommand is a stub implementation of commands.Commit.
type StubCommitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.CommitOptions
}

var _ commands.Commit = (*StubCommitCommand)(nil)

func (s *StubCommitCommand) Execute(
	_ context.Context,
	opts commands.CommitOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
