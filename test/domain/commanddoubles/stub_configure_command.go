//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/xx-cli/internal/domain/commands"
)

// StubConfigureCommand is a stub implementation of commands.Configure.
type StubConfigureCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.ConfigureResult
	LastOpts         commands.ConfigureOptions
}

var _ commands.Configure = (*StubConfigureCommand)(nil)

func (s *StubConfigureCommand) Execute(
	_ context.Context,
	opts commands.ConfigureOptions,
) (*commands.ConfigureResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.Result, nil
}
