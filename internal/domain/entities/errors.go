package entities

import (
	"fmt"
	"strings"
	"time"
)

// UsageError reports a bad action or flag combination.
type UsageError struct {
	Message string
	Valid   []string // accepted values, listed in the message when set
}

func (e *UsageError) Error() string {
	if len(e.Valid) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (valid: %s)", e.Message, strings.Join(e.Valid, ", "))
}

// InvalidInputError reports a well-formed invocation carrying an unusable value.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RepositoryError reports that the working tree could not be queried: it is
// not a repository, git is missing, or a git query failed.
type RepositoryError struct {
	Path string
	Op   string
	Err  error
}

func (e *RepositoryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s in %s: %v", e.Op, e.Path, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// TimeoutError reports a repository query that exceeded its configured bound.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Op, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
