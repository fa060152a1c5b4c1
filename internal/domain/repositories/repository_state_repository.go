package repositories

import (
	"context"
	"time"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// RepositoryStateRepository is the only boundary to the version-control
// system. Implementations must never mutate the working tree, the index or
// history.
type RepositoryStateRepository interface {
	// Open resolves the repository enclosing path. Returns a RepositoryError
	// when path is not inside a working tree.
	Open(ctx context.Context, path string, timeout time.Duration) (entities.RepositoryHandle, error)

	// Status lists staged, then unstaged, then untracked entries.
	Status(ctx context.Context, handle entities.RepositoryHandle) ([]entities.FileChange, error)

	// StagedDiff returns the raw diff of the index against HEAD, or "" when nothing is staged.
	StagedDiff(ctx context.Context, handle entities.RepositoryHandle) (string, error)

	// History returns up to count commits reachable from HEAD, most recent first,
	// with shortstat counters filled and no flags.
	History(ctx context.Context, handle entities.RepositoryHandle, count int) ([]entities.CommitRecord, error)
}
