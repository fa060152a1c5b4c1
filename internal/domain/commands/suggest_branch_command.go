package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// SuggestBranch is the interface for the suggest-branch command.
type SuggestBranch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SuggestBranchOptions) (*entities.BranchReport, error)
}

// SuggestBranchOptions holds the free text describing the work.
type SuggestBranchOptions struct {
	Context string
}

// SuggestBranchCommand derives a branch name from free text. It never touches the repository.
type SuggestBranchCommand struct{}

// NewSuggestBranchCommand creates a new SuggestBranchCommand.
func NewSuggestBranchCommand() *SuggestBranchCommand {
	return &SuggestBranchCommand{}
}

func (it *SuggestBranchCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts SuggestBranchOptions,
) (*entities.BranchReport, error) {
	suggestion, err := entities.NewBranchNamer(settings.Heuristics).Suggest(opts.Context)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Classified %q as %s", opts.Context, suggestion.Prefix)
	return &entities.BranchReport{
		Context:    opts.Context,
		Suggestion: suggestion,
		BranchName: suggestion.String(),
	}, nil
}
