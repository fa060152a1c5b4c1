package gitstate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

const defaultGitBinary = "git"

// GitStateRepository implements repositories.RepositoryStateRepository.
// Repository discovery and history go through go-git; status and the staged
// diff come from the git executable, whose text output is parsed in this package only.
type GitStateRepository struct {
	gitBinary string
}

// NewGitStateRepository creates a repository reader that runs the "git" found on PATH.
func NewGitStateRepository() repositories.RepositoryStateRepository {
	return &GitStateRepository{gitBinary: defaultGitBinary}
}

// NewGitStateRepositoryWithBinary creates a repository reader running the given git executable.
func NewGitStateRepositoryWithBinary(gitBinary string) *GitStateRepository {
	return &GitStateRepository{gitBinary: gitBinary}
}

// Open resolves the working tree enclosing path.
func (it *GitStateRepository) Open(
	_ context.Context,
	path string,
	timeout time.Duration,
) (entities.RepositoryHandle, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return entities.RepositoryHandle{}, &entities.RepositoryError{Path: path, Op: "resolve path", Err: err}
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return entities.RepositoryHandle{}, &entities.RepositoryError{
				Path: absPath,
				Op:   "open repository",
				Err:  errors.New("not a git repository (or any of the parent directories)"),
			}
		}
		return entities.RepositoryHandle{}, &entities.RepositoryError{Path: absPath, Op: "open repository", Err: err}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return entities.RepositoryHandle{}, &entities.RepositoryError{
			Path: absPath,
			Op:   "open worktree",
			Err:  fmt.Errorf("repository has no working tree: %w", err),
		}
	}

	root := worktree.Filesystem.Root()
	logger.Debugf("Opened repository at %s", root)

	return entities.RepositoryHandle{Root: root, Timeout: timeout}, nil
}

// Status runs `git status` in porcelain mode and groups its entries.
func (it *GitStateRepository) Status(
	ctx context.Context,
	handle entities.RepositoryHandle,
) ([]entities.FileChange, error) {
	output, err := it.runGit(ctx, handle,
		"status", "--porcelain=v1", "-z", "--untracked-files=all",
	)
	if err != nil {
		return nil, err
	}
	return parseStatus(output), nil
}

// StagedDiff returns the diff of the index against HEAD. Prefixes, colors
// and external drivers are forced so user configuration cannot change the format.
func (it *GitStateRepository) StagedDiff(
	ctx context.Context,
	handle entities.RepositoryHandle,
) (string, error) {
	return it.runGit(ctx, handle,
		"diff", "--cached", "--no-color", "--no-ext-diff", "--find-renames",
		"--src-prefix=a/", "--dst-prefix=b/",
	)
}

// queryError converts a failed query into a TimeoutError when ctx ran out
// of time, or into a RepositoryError otherwise.
func queryError(ctx context.Context, handle entities.RepositoryHandle, op string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &entities.TimeoutError{Op: op, Timeout: handle.Timeout, Err: err}
	}
	return &entities.RepositoryError{Path: handle.Root, Op: op, Err: err}
}
