//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
	"github.com/rios0rios0/gitassist/test/domain/commanddoubles"
)

func TestAnalyzeHistoryController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the count and repository to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeHistoryCommand{
			Report: &entities.HistoryReport{Commits: []entities.CommitRecord{}},
		}
		controller := controllers.NewAnalyzeHistoryController(stub, reports.NewDefaultRendererRegistry())
		cmd, out := newTestCommand(t, controller, "--count", "3", "--repo", "/work/app", "--timeout", fixedTimeout.String())

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, stub.LastOpts.Count)
		assert.Equal(t, "/work/app", stub.LastOpts.RepoDir)
		assert.Equal(t, fixedTimeout, stub.LastSettings.Timeout)
		assert.Contains(t, out.String(), "COMMIT HISTORY ANALYSIS")
	})

	t.Run("should load heuristics from the config file", func(t *testing.T) {
		t.Parallel()

		// given
		configPath := filepath.Join(t.TempDir(), "gitassist.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("timeout: 4s\nheuristics:\n  min_subject_length: 3\n"), 0o600))
		stub := &commanddoubles.StubAnalyzeHistoryCommand{Report: &entities.HistoryReport{}}
		controller := controllers.NewAnalyzeHistoryController(stub, reports.NewDefaultRendererRegistry())
		cmd, _ := newTestCommand(t, controller, "--config", configPath, "--format", "json")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 4*time.Second, stub.LastSettings.Timeout)
		assert.Equal(t, 3, stub.LastSettings.Heuristics.MinSubjectLength)
		assert.Equal(t, 10, stub.LastOpts.Count)
	})

	t.Run("should reject an unreadable config file as invalid input", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeHistoryCommand{}
		controller := controllers.NewAnalyzeHistoryController(stub, reports.NewDefaultRendererRegistry())
		cmd, _ := newTestCommand(t, controller, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		var invalid *entities.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "config", invalid.Field)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should map repository failures to the repository exit code", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeHistoryCommand{
			ExecuteErr: &entities.RepositoryError{Path: "/tmp", Op: "open repository", Err: errors.New("not a git repository")},
		}
		controller := controllers.NewAnalyzeHistoryController(stub, reports.NewDefaultRendererRegistry())
		cmd, out := newTestCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		assert.Equal(t, controllers.ExitRepositoryError, controllers.ExitCode(err))
		assert.Empty(t, out.String())
	})
}
