package controllers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// ActionController handles the root command and routes --action to the
// controller registered under that name.
type ActionController struct {
	controllers []entities.Controller
}

// NewActionController creates a dispatcher over the given controllers.
func NewActionController(controllers *[]entities.Controller) *ActionController {
	return &ActionController{controllers: *controllers}
}

// GetBind returns the Cobra command metadata for the root command.
func (it *ActionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gitassist",
		Short: "Change analysis and naming heuristics for git working trees",
		Long: `Inspect the staged changes and commit history of a git working tree and
produce deterministic reports: a review of staged changes to draft a commit
message from, branch name suggestions and commit history quality flags.

Every action is read-only: the working tree, the index and history are never modified.

Usage:
  gitassist --action review-changes
  gitassist --action suggest-branch --context "fix login bug"
  gitassist --action analyze-history --count 20 --format json`,
	}
}

// AddFlags adds the dispatcher flags, including the per-action ones so that
// every action is reachable through --action alone.
func (it *ActionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("action", "", "Action to perform: "+strings.Join(it.Actions(), ", "))
	cmd.Flags().String("context", "", "Description of the work (suggest-branch)")
	cmd.Flags().Int("count", commands.DefaultHistoryCount, "Number of commits to analyze (analyze-history)")
}

// Execute dispatches to the controller named by --action.
func (it *ActionController) Execute(cmd *cobra.Command, args []string) error {
	action, _ := cmd.Flags().GetString("action")
	if action == "" {
		return &entities.UsageError{Message: "--action is required", Valid: it.Actions()}
	}

	for _, controller := range it.controllers {
		if controller.GetBind().Use == action {
			return controller.Execute(cmd, args)
		}
	}

	return &entities.UsageError{Message: "unknown action \"" + action + "\"", Valid: it.Actions()}
}

// Actions lists the valid action names in registration order.
func (it *ActionController) Actions() []string {
	names := make([]string, 0, len(it.controllers))
	for _, controller := range it.controllers {
		names = append(names, controller.GetBind().Use)
	}
	return names
}
