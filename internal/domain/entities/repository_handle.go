package entities

import (
	"context"
	"time"
)

// RepositoryHandle identifies an opened working tree. Every repository
// query receives it explicitly instead of relying on the process directory.
type RepositoryHandle struct {
	Root    string        // absolute path of the working tree
	Timeout time.Duration // bound for each external query, zero means unbounded
}

// QueryContext derives the context a single repository query must run under.
func (h RepositoryHandle) QueryContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.Timeout)
}
