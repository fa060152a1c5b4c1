package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register output formats shared by every controller
	if err := container.Provide(reports.NewDefaultRendererRegistry); err != nil {
		return err
	}

	// Register controller constructors
	constructors := []any{
		NewReviewChangesController,
		NewSuggestBranchController,
		NewAnalyzeHistoryController,
		NewCheckStatusController,
		NewSelfTestController,
		NewControllers,
		NewActionController,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all action controllers, in the order actions are listed.
func NewControllers(
	reviewChangesController *ReviewChangesController,
	suggestBranchController *SuggestBranchController,
	analyzeHistoryController *AnalyzeHistoryController,
	checkStatusController *CheckStatusController,
	selfTestController *SelfTestController,
) *[]entities.Controller {
	return &[]entities.Controller{
		reviewChangesController,
		suggestBranchController,
		analyzeHistoryController,
		checkStatusController,
		selfTestController,
	}
}
