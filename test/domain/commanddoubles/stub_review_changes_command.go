//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// StubReviewChangesCommand is a stub implementation of commands.ReviewChanges.
type StubReviewChangesCommand struct {
	ExecuteCallCount int
	Report           *entities.ReviewReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ReviewChangesOptions
}

var _ commands.ReviewChanges = (*StubReviewChangesCommand)(nil)

func (s *StubReviewChangesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReviewChangesOptions,
) (*entities.ReviewReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
