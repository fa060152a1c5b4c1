package commands

import (
	"context"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

// CheckStatus is the interface for the check-status command.
type CheckStatus interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckStatusOptions) (*entities.StatusReport, error)
}

// CheckStatusOptions holds runtime options for a status check.
type CheckStatusOptions struct {
	RepoDir string
}

// CheckStatusCommand reports the working tree status by group.
type CheckStatusCommand struct {
	stateRepository repositories.RepositoryStateRepository
}

// NewCheckStatusCommand creates a new CheckStatusCommand.
func NewCheckStatusCommand(stateRepository repositories.RepositoryStateRepository) *CheckStatusCommand {
	return &CheckStatusCommand{stateRepository: stateRepository}
}

func (it *CheckStatusCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckStatusOptions,
) (*entities.StatusReport, error) {
	handle, err := it.stateRepository.Open(ctx, opts.RepoDir, settings.Timeout)
	if err != nil {
		return nil, err
	}

	status, err := it.stateRepository.Status(ctx, handle)
	if err != nil {
		return nil, err
	}

	return &entities.StatusReport{
		Staged:    entities.FilterByGroup(status, entities.GroupStaged),
		Unstaged:  entities.FilterByGroup(status, entities.GroupUnstaged),
		Untracked: entities.FilterByGroup(status, entities.GroupUntracked),
		Clean:     len(status) == 0,
	}, nil
}
