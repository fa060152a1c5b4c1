//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

func TestSuggestBranchCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should return the branch name for the context", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewSuggestBranchCommand()

		// when
		report, err := command.Execute(context.Background(), entities.DefaultSettings(),
			commands.SuggestBranchOptions{Context: "fixing login bug"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "fixing login bug", report.Context)
		assert.Equal(t, entities.PrefixFix, report.Suggestion.Prefix)
		assert.Equal(t, "fix/login-bug", report.BranchName)
	})

	t.Run("should use the configured categories", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Heuristics.Categories = []entities.Category{
			{Prefix: entities.BranchPrefix("hotfix"), Keywords: []string{"urgent"}},
		}
		command := commands.NewSuggestBranchCommand()

		// when
		report, err := command.Execute(context.Background(), settings,
			commands.SuggestBranchOptions{Context: "urgent payment outage"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "hotfix/urgent-payment-outage", report.BranchName)
	})

	t.Run("should reject a context without significant words", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewSuggestBranchCommand()

		// when
		report, err := command.Execute(context.Background(), entities.DefaultSettings(),
			commands.SuggestBranchOptions{Context: "the and of !!"})

		// then
		var invalid *entities.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Nil(t, report)
	})
}
