package gitstate

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

const shortHashLength = 7

// History walks HEAD in committer-time order, like `git log`, and computes
// each commit's shortstat against its first parent.
func (it *GitStateRepository) History(
	ctx context.Context,
	handle entities.RepositoryHandle,
	count int,
) ([]entities.CommitRecord, error) {
	const op = "read history"

	if count < 1 {
		return nil, &entities.InvalidInputError{Field: "count", Message: "must be at least 1"}
	}

	queryCtx, cancel := handle.QueryContext(ctx)
	defer cancel()

	repo, err := git.PlainOpen(handle.Root)
	if err != nil {
		return nil, &entities.RepositoryError{Path: handle.Root, Op: op, Err: err}
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logger.Debug("HEAD does not point to a commit yet, history is empty")
			return []entities.CommitRecord{}, nil
		}
		return nil, &entities.RepositoryError{Path: handle.Root, Op: op, Err: err}
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, &entities.RepositoryError{Path: handle.Root, Op: op, Err: err}
	}
	defer iter.Close()

	records := make([]entities.CommitRecord, 0, count)
	for len(records) < count {
		if ctxErr := queryCtx.Err(); ctxErr != nil {
			return nil, queryError(queryCtx, handle, op, ctxErr)
		}

		commit, nextErr := iter.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			return nil, queryError(queryCtx, handle, op, nextErr)
		}

		record, recordErr := commitRecord(queryCtx, commit)
		if recordErr != nil {
			return nil, queryError(queryCtx, handle, op, recordErr)
		}
		records = append(records, record)
	}

	logger.Debugf("Read %d commits from %s", len(records), handle.Root)
	return records, nil
}

func commitRecord(ctx context.Context, commit *object.Commit) (entities.CommitRecord, error) {
	stats, err := commit.StatsContext(ctx)
	if err != nil {
		return entities.CommitRecord{}, err
	}

	subject, body := splitMessage(commit.Message)
	hash := commit.Hash.String()

	record := entities.CommitRecord{
		Hash:         hash,
		ShortHash:    hash[:shortHashLength],
		Author:       commit.Author.Name,
		AuthorDate:   commit.Author.When,
		SubjectLine:  subject,
		BodyLines:    body,
		FilesChanged: len(stats),
		Flags:        []entities.CommitFlag{},
	}
	for _, stat := range stats {
		record.LinesAdded += stat.Addition
		record.LinesRemoved += stat.Deletion
	}
	return record, nil
}

// splitMessage returns the first line as subject and the remaining lines,
// without the separating and trailing blank lines, as body.
func splitMessage(message string) (string, []string) {
	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")
	subject := strings.TrimSpace(lines[0])

	body := lines[1:]
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return subject, append([]string{}, body...)
}
