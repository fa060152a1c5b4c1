package controllers

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/commands"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// SelfTestController handles the "test" action.
type SelfTestController struct {
	command   commands.SelfTest
	renderers *reports.RendererRegistry
}

// NewSelfTestController creates a new SelfTestController.
func NewSelfTestController(command commands.SelfTest, renderers *reports.RendererRegistry) *SelfTestController {
	return &SelfTestController{command: command, renderers: renderers}
}

func (it *SelfTestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "test",
		Short: "Run the built-in self-check (no repository needed)",
	}
}

func (it *SelfTestController) AddFlags(_ *cobra.Command) {}

func (it *SelfTestController) Execute(cmd *cobra.Command, _ []string) error {
	inv, err := newInvocation(cmd, it.renderers)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(context.Background())
	if err != nil {
		return err
	}

	return writeReport(cmd, func(w io.Writer) error {
		return inv.renderer.RenderSelfTest(w, report)
	})
}
