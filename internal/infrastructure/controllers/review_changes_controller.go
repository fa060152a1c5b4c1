package controllers

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// ReviewChangesController handles the "review-changes" action.
type ReviewChangesController struct {
	command   commands.ReviewChanges
	renderers *reports.RendererRegistry
}

// NewReviewChangesController creates a new ReviewChangesController.
func NewReviewChangesController(
	command commands.ReviewChanges,
	renderers *reports.RendererRegistry,
) *ReviewChangesController {
	return &ReviewChangesController{command: command, renderers: renderers}
}

// GetBind returns the Cobra command metadata for the review-changes controller.
func (it *ReviewChangesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "review-changes",
		Short: "Summarize staged changes as commit-message drafting context",
		Long: `Summarize the staged changes of the repository: status, per-file line counts
and the staged diff hunks. The report is meant to be handed to whoever writes
the commit message; no message is generated.`,
	}
}

func (it *ReviewChangesController) AddFlags(_ *cobra.Command) {}

// Execute runs the review and prints the report.
func (it *ReviewChangesController) Execute(cmd *cobra.Command, _ []string) error {
	inv, err := newInvocation(cmd, it.renderers)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(context.Background(), inv.settings, commands.ReviewChangesOptions{
		RepoDir: inv.repoDir,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd, func(w io.Writer) error {
		return inv.renderer.RenderReview(w, report)
	})
}
