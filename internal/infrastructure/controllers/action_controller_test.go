//go:build unit

package controllers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
	"github.com/rios0rios0/gitassist/test/domain/commanddoubles"
)

type actionFixture struct {
	review  *commanddoubles.StubReviewChangesCommand
	branch  *commanddoubles.StubSuggestBranchCommand
	history *commanddoubles.StubAnalyzeHistoryCommand
	status  *commanddoubles.StubCheckStatusCommand
	self    *commanddoubles.StubSelfTestCommand
	root    *controllers.ActionController
}

func newActionFixture() *actionFixture {
	renderers := reports.NewDefaultRendererRegistry()
	f := &actionFixture{
		review:  &commanddoubles.StubReviewChangesCommand{Report: &entities.ReviewReport{}},
		branch:  &commanddoubles.StubSuggestBranchCommand{Report: &entities.BranchReport{BranchName: "feature/x"}},
		history: &commanddoubles.StubAnalyzeHistoryCommand{Report: &entities.HistoryReport{}},
		status:  &commanddoubles.StubCheckStatusCommand{Report: &entities.StatusReport{Clean: true}},
		self:    &commanddoubles.StubSelfTestCommand{Report: &entities.SelfTestReport{Passed: true}},
	}
	list := controllers.NewControllers(
		controllers.NewReviewChangesController(f.review, renderers),
		controllers.NewSuggestBranchController(f.branch, renderers),
		controllers.NewAnalyzeHistoryController(f.history, renderers),
		controllers.NewCheckStatusController(f.status, renderers),
		controllers.NewSelfTestController(f.self, renderers),
	)
	f.root = controllers.NewActionController(list)
	return f
}

func TestActionController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should list the actions in registration order", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()

		// when
		actions := fixture.root.Actions()

		// then
		assert.Equal(t,
			[]string{"review-changes", "suggest-branch", "analyze-history", "check-status", "test"},
			actions,
		)
	})

	t.Run("should dispatch to the controller named by --action", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()
		cmd, out := newTestCommand(t, fixture.root, "--action", "suggest-branch", "--context", "add search")

		// when
		err := fixture.root.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.branch.ExecuteCallCount)
		assert.Equal(t, "add search", fixture.branch.LastOpts.Context)
		assert.Zero(t, fixture.review.ExecuteCallCount)
		assert.Equal(t, "Suggested Branch Name: feature/x\n", out.String())
	})

	t.Run("should use the default count for analyze-history", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()
		cmd, _ := newTestCommand(t, fixture.root, "--action", "analyze-history")

		// when
		err := fixture.root.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 10, fixture.history.LastOpts.Count)
	})

	t.Run("should return a usage error listing the valid actions", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()
		cmd, out := newTestCommand(t, fixture.root, "--action", "deploy")

		// when
		err := fixture.root.Execute(cmd, nil)

		// then
		var usageErr *entities.UsageError
		require.ErrorAs(t, err, &usageErr)
		assert.Contains(t, err.Error(), `unknown action "deploy"`)
		assert.Contains(t, err.Error(), "review-changes")
		assert.Equal(t, controllers.ExitUsage, controllers.ExitCode(err))
		assert.Empty(t, out.String())
	})

	t.Run("should require --action", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()
		cmd, _ := newTestCommand(t, fixture.root)

		// when
		err := fixture.root.Execute(cmd, nil)

		// then
		var usageErr *entities.UsageError
		require.ErrorAs(t, err, &usageErr)
	})

	t.Run("should reject a negative timeout before running the action", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()
		cmd, _ := newTestCommand(t, fixture.root, "--action", "check-status", "--timeout=-1s")

		// when
		err := fixture.root.Execute(cmd, nil)

		// then
		var invalid *entities.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Zero(t, fixture.status.ExecuteCallCount)
	})

	t.Run("should render the self-test report", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newActionFixture()
		cmd, out := newTestCommand(t, fixture.root, "--action", "test")

		// when
		err := fixture.root.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.self.ExecuteCallCount)
		assert.Contains(t, out.String(), "All checks passed.")
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"should return success without an error", nil, controllers.ExitSuccess},
		{"should map usage errors to one", &entities.UsageError{Message: "bad"}, controllers.ExitUsage},
		{"should map invalid input to one", &entities.InvalidInputError{Field: "count", Message: "bad"}, controllers.ExitUsage},
		{"should map other errors to one", errors.New("self-test failed"), controllers.ExitUsage},
		{
			"should map repository errors to two",
			&entities.RepositoryError{Path: ".", Op: "open repository", Err: errors.New("boom")},
			controllers.ExitRepositoryError,
		},
		{
			"should map wrapped timeouts to two",
			errors.Join(errors.New("review"), &entities.TimeoutError{Op: "git diff", Timeout: time.Second, Err: context.DeadlineExceeded}),
			controllers.ExitRepositoryError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			code := controllers.ExitCode(tt.err)

			// then
			assert.Equal(t, tt.expected, code)
		})
	}
}
