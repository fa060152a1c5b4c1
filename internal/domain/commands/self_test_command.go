package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

const sampleDiff = `diff --git a/test.js b/test.js
index 1234567..89abcde 100644
--- a/test.js
+++ b/test.js
@@ -1,3 +1,5 @@
+// New comment
 if (condition) {
-  console.log('old');
+  console.log('new');
+  return true;
 }
`

// SelfTest is the interface for the built-in self-check.
type SelfTest interface {
	Execute(ctx context.Context) (*entities.SelfTestReport, error)
}

// SelfTestCommand runs the branch namer and the diff summarizer against
// fixed fixtures with the default tables. It needs no repository.
type SelfTestCommand struct {
	summarizer repositories.DiffSummarizer
}

// NewSelfTestCommand creates a new SelfTestCommand.
func NewSelfTestCommand(summarizer repositories.DiffSummarizer) *SelfTestCommand {
	return &SelfTestCommand{summarizer: summarizer}
}

// Execute returns the report together with an error when any check failed.
func (it *SelfTestCommand) Execute(_ context.Context) (*entities.SelfTestReport, error) {
	heuristics := entities.DefaultHeuristics()
	namer := entities.NewBranchNamer(heuristics)

	branchFixtures := []struct{ input, expected string }{
		{"adding search feature", "feature/adding-search"},
		{"fix broken login button", "fix/broken-login-button"},
		{"refactor authentication code", "refactor/authentication-code"},
		{"update readme documentation", "docs/update-readme-documentation"},
	}

	report := &entities.SelfTestReport{Passed: true}
	for _, fixture := range branchFixtures {
		actual := ""
		if suggestion, err := namer.Suggest(fixture.input); err != nil {
			actual = "error: " + err.Error()
		} else {
			actual = suggestion.String()
		}
		report.Add(entities.SelfTestCheck{
			Name: "branch name", Input: fixture.input, Expected: fixture.expected, Actual: actual,
		})
	}

	files := it.summarizer.Summarize(sampleDiff, heuristics.MaxHunkLines)
	report.Add(entities.SelfTestCheck{
		Name:     "diff summary",
		Input:    "test.js sample diff",
		Expected: "test.js modified +3 -1",
		Actual:   describeFiles(files),
	})

	if !report.Passed {
		return nil, errors.New("self-test failed: " + failedChecks(report))
	}
	return report, nil
}

func describeFiles(files []entities.FileChange) string {
	parts := make([]string, 0, len(files))
	for _, f := range files {
		parts = append(parts, fmt.Sprintf("%s %s +%d -%d", f.Path, f.ChangeType, f.LinesAdded, f.LinesRemoved))
	}
	return strings.Join(parts, "; ")
}

func failedChecks(report *entities.SelfTestReport) string {
	var failed []string
	for _, check := range report.Checks {
		if !check.Passed {
			failed = append(failed, fmt.Sprintf("%s %q: expected %q, got %q",
				check.Name, check.Input, check.Expected, check.Actual))
		}
	}
	return strings.Join(failed, "; ")
}
