package controllers

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// CheckStatusController handles the "check-status" action.
type CheckStatusController struct {
	command   commands.CheckStatus
	renderers *reports.RendererRegistry
}

// NewCheckStatusController creates a new CheckStatusController.
func NewCheckStatusController(
	command commands.CheckStatus,
	renderers *reports.RendererRegistry,
) *CheckStatusController {
	return &CheckStatusController{command: command, renderers: renderers}
}

func (it *CheckStatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-status",
		Short: "Show staged, unstaged and untracked files",
	}
}

func (it *CheckStatusController) AddFlags(_ *cobra.Command) {}

func (it *CheckStatusController) Execute(cmd *cobra.Command, _ []string) error {
	inv, err := newInvocation(cmd, it.renderers)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(context.Background(), inv.settings, commands.CheckStatusOptions{
		RepoDir: inv.repoDir,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd, func(w io.Writer) error {
		return inv.renderer.RenderStatus(w, report)
	})
}
