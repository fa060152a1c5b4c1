package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

// ReviewChanges is the interface for the review-changes command.
type ReviewChanges interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReviewChangesOptions) (*entities.ReviewReport, error)
}

// ReviewChangesOptions holds runtime options for a review.
type ReviewChangesOptions struct {
	RepoDir string
}

// ReviewChangesCommand gathers the staged status and the parsed staged diff
// into the context an external author needs to draft a commit message.
type ReviewChangesCommand struct {
	stateRepository repositories.RepositoryStateRepository
	summarizer      repositories.DiffSummarizer
}

// NewReviewChangesCommand creates a new ReviewChangesCommand.
func NewReviewChangesCommand(
	stateRepository repositories.RepositoryStateRepository,
	summarizer repositories.DiffSummarizer,
) *ReviewChangesCommand {
	return &ReviewChangesCommand{
		stateRepository: stateRepository,
		summarizer:      summarizer,
	}
}

// Execute builds the review report. Nothing staged yields an empty report, not an error.
func (it *ReviewChangesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReviewChangesOptions,
) (*entities.ReviewReport, error) {
	handle, err := it.stateRepository.Open(ctx, opts.RepoDir, settings.Timeout)
	if err != nil {
		return nil, err
	}

	status, err := it.stateRepository.Status(ctx, handle)
	if err != nil {
		return nil, err
	}

	diffText, err := it.stateRepository.StagedDiff(ctx, handle)
	if err != nil {
		return nil, err
	}

	files := it.summarizer.Summarize(diffText, settings.Heuristics.MaxHunkLines)
	logger.Debugf("Parsed %d staged files from %d bytes of diff", len(files), len(diffText))

	report := &entities.ReviewReport{
		Staged: entities.FilterByGroup(status, entities.GroupStaged),
		Files:  files,
		Summary: entities.ReviewSummary{
			FilesChanged: len(files),
			Unstaged:     len(entities.FilterByGroup(status, entities.GroupUnstaged)),
			Untracked:    len(entities.FilterByGroup(status, entities.GroupUntracked)),
		},
	}
	for _, file := range files {
		report.Summary.LinesAdded += file.LinesAdded
		report.Summary.LinesRemoved += file.LinesRemoved
		if file.Truncated {
			report.Summary.TruncatedFiles++
		}
	}

	return report, nil
}
