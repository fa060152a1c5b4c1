//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/repositories/gitstate"
	"github.com/rios0rios0/gitassist/test/domain/entitybuilders"
	"github.com/rios0rios0/gitassist/test/infrastructure/repositorydoubles"
)

func TestSelfTestCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass every check with the git diff summarizer", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewSelfTestCommand(gitstate.NewDiffSummarizer())

		// when
		report, err := command.Execute(context.Background())

		// then
		require.NoError(t, err)
		assert.True(t, report.Passed)
		require.Len(t, report.Checks, 5)
		for _, check := range report.Checks {
			assert.True(t, check.Passed, check.Input)
		}
		assert.Equal(t, "test.js modified +3 -1", report.Checks[4].Actual)
	})

	t.Run("should fail when the diff summary does not match", func(t *testing.T) {
		t.Parallel()

		// given
		summarizer := &repositorydoubles.StubDiffSummarizer{
			Files: []entities.FileChange{
				entitybuilders.NewFileChangeBuilder().WithPath("test.js").WithLines(1, 1).BuildFileChange(),
			},
		}
		command := commands.NewSelfTestCommand(summarizer)

		// when
		report, err := command.Execute(context.Background())

		// then
		require.Error(t, err)
		assert.Nil(t, report)
		assert.Contains(t, err.Error(), `got "test.js modified +1 -1"`)
	})
}
