//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// StubAnalyzeHistoryCommand is a stub implementation of commands.AnalyzeHistory.
type StubAnalyzeHistoryCommand struct {
	ExecuteCallCount int
	Report           *entities.HistoryReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.AnalyzeHistoryOptions
}

var _ commands.AnalyzeHistory = (*StubAnalyzeHistoryCommand)(nil)

func (s *StubAnalyzeHistoryCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.AnalyzeHistoryOptions,
) (*entities.HistoryReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
