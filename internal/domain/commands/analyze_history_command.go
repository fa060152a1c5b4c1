package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

// DefaultHistoryCount is the number of commits analyzed when none is given.
const DefaultHistoryCount = 10

// AnalyzeHistory is the interface for the analyze-history command.
type AnalyzeHistory interface {
	Execute(ctx context.Context, settings *entities.Settings, opts AnalyzeHistoryOptions) (*entities.HistoryReport, error)
}

// AnalyzeHistoryOptions holds runtime options for a history analysis.
type AnalyzeHistoryOptions struct {
	RepoDir string
	Count   int
}

// AnalyzeHistoryCommand reads recent commits and flags quality issues.
type AnalyzeHistoryCommand struct {
	stateRepository repositories.RepositoryStateRepository
}

// NewAnalyzeHistoryCommand creates a new AnalyzeHistoryCommand.
func NewAnalyzeHistoryCommand(stateRepository repositories.RepositoryStateRepository) *AnalyzeHistoryCommand {
	return &AnalyzeHistoryCommand{stateRepository: stateRepository}
}

// Execute returns min(Count, available) commits, most recent first.
func (it *AnalyzeHistoryCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts AnalyzeHistoryOptions,
) (*entities.HistoryReport, error) {
	if opts.Count < 1 {
		return nil, &entities.InvalidInputError{Field: "count", Message: "must be at least 1"}
	}

	handle, err := it.stateRepository.Open(ctx, opts.RepoDir, settings.Timeout)
	if err != nil {
		return nil, err
	}

	commits, err := it.stateRepository.History(ctx, handle, opts.Count)
	if err != nil {
		return nil, err
	}

	rules := entities.NewQualityRules(settings.Heuristics)
	report := &entities.HistoryReport{
		Commits: make([]entities.CommitRecord, 0, len(commits)),
		Summary: entities.HistorySummary{Requested: opts.Count},
	}
	for _, commit := range commits {
		commit.Flags = rules.Flags(commit)
		for _, flag := range commit.Flags {
			report.Summary.Count(flag)
		}
		report.Commits = append(report.Commits, commit)
	}
	report.Summary.CommitsAnalyzed = len(report.Commits)

	logger.Debugf("Analyzed %d commits, %d issues", report.Summary.CommitsAnalyzed, report.Summary.IssuesFound)
	return report, nil
}
