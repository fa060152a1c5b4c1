package controllers

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// SuggestBranchController handles the "suggest-branch" action.
type SuggestBranchController struct {
	command   commands.SuggestBranch
	renderers *reports.RendererRegistry
}

// NewSuggestBranchController creates a new SuggestBranchController.
func NewSuggestBranchController(
	command commands.SuggestBranch,
	renderers *reports.RendererRegistry,
) *SuggestBranchController {
	return &SuggestBranchController{command: command, renderers: renderers}
}

// GetBind returns the Cobra command metadata for the suggest-branch controller.
func (it *SuggestBranchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "suggest-branch",
		Short: "Suggest a conventional branch name from a description",
		Long: `Classify a free-text description of the work as fix, feature, refactor,
docs or chore and build a branch name such as "fix/login-bug" from it.`,
	}
}

// AddFlags adds the suggest-branch flags to the given Cobra command.
func (it *SuggestBranchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("context", "", "Description of the work, e.g. \"fix login bug\" (required)")
}

// Execute suggests the branch name; --context must be given.
func (it *SuggestBranchController) Execute(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("context") {
		return &entities.UsageError{Message: "--context is required for suggest-branch"}
	}
	text, _ := cmd.Flags().GetString("context")

	inv, err := newInvocation(cmd, it.renderers)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(context.Background(), inv.settings, commands.SuggestBranchOptions{
		Context: text,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd, func(w io.Writer) error {
		return inv.renderer.RenderBranch(w, report)
	})
}
