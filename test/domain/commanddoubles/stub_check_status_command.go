//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// StubCheckStatusCommand is a stub implementation of commands.CheckStatus.
type StubCheckStatusCommand struct {
	ExecuteCallCount int
	Report           *entities.StatusReport
	ExecuteErr       error
	LastOpts         commands.CheckStatusOptions
}

var _ commands.CheckStatus = (*StubCheckStatusCommand)(nil)

func (s *StubCheckStatusCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.CheckStatusOptions,
) (*entities.StatusReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
