//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// StubSuggestBranchCommand is a stub implementation of commands.SuggestBranch.
type StubSuggestBranchCommand struct {
	ExecuteCallCount int
	Report           *entities.BranchReport
	ExecuteErr       error
	LastOpts         commands.SuggestBranchOptions
}

var _ commands.SuggestBranch = (*StubSuggestBranchCommand)(nil)

func (s *StubSuggestBranchCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.SuggestBranchOptions,
) (*entities.BranchReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
