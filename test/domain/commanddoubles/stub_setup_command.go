//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
)

// StubSetupCommand is a stub implementation of commands.Setup.
type StubSetupCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.SetupOptions
}

var _ commands.Setup = (*StubSetupCommand)(nil)

func (s *StubSetupCommand) Execute(
	_ context.Context,
	opts commands.SetupOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
