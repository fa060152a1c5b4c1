package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewReviewChangesCommand,
		NewCheckStatusCommand,
		NewSuggestBranchCommand,
		NewAnalyzeHistoryCommand,
		NewSelfTestCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *ReviewChangesCommand) ReviewChanges { return impl },
		func(impl *CheckStatusCommand) CheckStatus { return impl },
		func(impl *SuggestBranchCommand) SuggestBranch { return impl },
		func(impl *AnalyzeHistoryCommand) AnalyzeHistory { return impl },
		func(impl *SelfTestCommand) SelfTest { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
