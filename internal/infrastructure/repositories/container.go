package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitassist/internal/infrastructure/repositories/gitstate"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// git working tree: status, staged diff and history
	if err := container.Provide(gitstate.NewGitStateRepository); err != nil {
		return err
	}

	// parser for the staged diff text
	if err := container.Provide(gitstate.NewDiffSummarizer); err != nil {
		return err
	}

	return nil
}
