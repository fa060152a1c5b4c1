package controllers

import (
	"errors"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

const (
	ExitSuccess         = 0
	ExitUsage           = 1
	ExitRepositoryError = 2
)

// ExitCode maps an action error onto the process exit code. Errors outside
// the taxonomy, such as cobra flag parsing errors, count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var repositoryErr *entities.RepositoryError
	var timeoutErr *entities.TimeoutError
	if errors.As(err, &repositoryErr) || errors.As(err, &timeoutErr) {
		return ExitRepositoryError
	}

	return ExitUsage
}
