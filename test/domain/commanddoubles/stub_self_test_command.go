//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// StubSelfTestCommand is a stub implementation of commands.SelfTest.
type StubSelfTestCommand struct {
	ExecuteCallCount int
	Report           *entities.SelfTestReport
	ExecuteErr       error
}

var _ commands.SelfTest = (*StubSelfTestCommand)(nil)

func (s *StubSelfTestCommand) Execute(_ context.Context) (*entities.SelfTestReport, error) {
	s.ExecuteCallCount++
	return s.Report, s.ExecuteErr
}
