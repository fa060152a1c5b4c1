//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"time"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

// SpyStateRepository implements repositories.RepositoryStateRepository as a configurable spy.
type SpyStateRepository struct {
	// --- Open ---
	Root        string
	OpenErr     error
	OpenedPaths []string
	Timeouts    []time.Duration

	// --- Status ---
	StatusEntries []entities.FileChange
	StatusErr     error
	StatusCalls   int

	// --- StagedDiff ---
	Diff          string
	StagedDiffErr error
	DiffCalls     int

	// --- History ---
	Commits      []entities.CommitRecord
	HistoryErr   error
	HistoryCount []int
}

var _ repositories.RepositoryStateRepository = (*SpyStateRepository)(nil)

func (s *SpyStateRepository) Open(
	_ context.Context, path string, timeout time.Duration,
) (entities.RepositoryHandle, error) {
	s.OpenedPaths = append(s.OpenedPaths, path)
	s.Timeouts = append(s.Timeouts, timeout)
	if s.OpenErr != nil {
		return entities.RepositoryHandle{}, s.OpenErr
	}
	return entities.RepositoryHandle{Root: s.Root, Timeout: timeout}, nil
}

func (s *SpyStateRepository) Status(
	_ context.Context, _ entities.RepositoryHandle,
) ([]entities.FileChange, error) {
	s.StatusCalls++
	return s.StatusEntries, s.StatusErr
}

func (s *SpyStateRepository) StagedDiff(_ context.Context, _ entities.RepositoryHandle) (string, error) {
	s.DiffCalls++
	return s.Diff, s.StagedDiffErr
}

// History returns at most count of the configured commits, like a real log walk.
func (s *SpyStateRepository) History(
	_ context.Context, _ entities.RepositoryHandle, count int,
) ([]entities.CommitRecord, error) {
	s.HistoryCount = append(s.HistoryCount, count)
	if s.HistoryErr != nil {
		return nil, s.HistoryErr
	}
	if count < len(s.Commits) {
		return append([]entities.CommitRecord(nil), s.Commits[:count]...), nil
	}
	return append([]entities.CommitRecord(nil), s.Commits...), nil
}
