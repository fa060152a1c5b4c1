package controllers

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// AnalyzeHistoryController handles the "analyze-history" action.
type AnalyzeHistoryController struct {
	command   commands.AnalyzeHistory
	renderers *reports.RendererRegistry
}

// NewAnalyzeHistoryController creates a new AnalyzeHistoryController.
func NewAnalyzeHistoryController(
	command commands.AnalyzeHistory,
	renderers *reports.RendererRegistry,
) *AnalyzeHistoryController {
	return &AnalyzeHistoryController{command: command, renderers: renderers}
}

// GetBind returns the Cobra command metadata for the analyze-history controller.
func (it *AnalyzeHistoryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze-history",
		Short: "Flag low-quality commits in recent history",
		Long: `Read the most recent commits reachable from HEAD and flag subjects that are
too short or uninformative, and commits that are too large to review.`,
	}
}

// AddFlags adds the analyze-history flags to the given Cobra command.
func (it *AnalyzeHistoryController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", commands.DefaultHistoryCount, "Number of commits to analyze")
}

func (it *AnalyzeHistoryController) Execute(cmd *cobra.Command, _ []string) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		count = commands.DefaultHistoryCount
	}

	inv, err := newInvocation(cmd, it.renderers)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(context.Background(), inv.settings, commands.AnalyzeHistoryOptions{
		RepoDir: inv.repoDir,
		Count:   count,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd, func(w io.Writer) error {
		return inv.renderer.RenderHistory(w, report)
	})
}
