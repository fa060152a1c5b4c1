//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FileChangeBuilder helps create test file changes with a fluent interface.
type FileChangeBuilder struct {
	*testkit.BaseBuilder
	path         string
	changeType   entities.ChangeType
	group        entities.StatusGroup
	linesAdded   int
	linesRemoved int
	diffHunks    []string
	truncated    bool
	oldPath      string
}

// NewFileChangeBuilder creates a new file change builder with sensible defaults.
func NewFileChangeBuilder() *FileChangeBuilder {
	return &FileChangeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "main.go",
		changeType:  entities.ChangeModified,
		group:       entities.GroupStaged,
		linesAdded:  1,
	}
}

// WithPath sets the file path.
func (b *FileChangeBuilder) WithPath(path string) *FileChangeBuilder {
	b.path = path
	return b
}

// WithChangeType sets the change type.
func (b *FileChangeBuilder) WithChangeType(changeType entities.ChangeType) *FileChangeBuilder {
	b.changeType = changeType
	return b
}

// WithGroup sets the status group.
func (b *FileChangeBuilder) WithGroup(group entities.StatusGroup) *FileChangeBuilder {
	b.group = group
	return b
}

// WithLines sets the added and removed line counts.
func (b *FileChangeBuilder) WithLines(added, removed int) *FileChangeBuilder {
	b.linesAdded = added
	b.linesRemoved = removed
	return b
}

// WithHunks sets the captured diff hunks.
func (b *FileChangeBuilder) WithHunks(hunks ...string) *FileChangeBuilder {
	b.diffHunks = hunks
	return b
}

// WithTruncated marks the hunks as capped.
func (b *FileChangeBuilder) WithTruncated(truncated bool) *FileChangeBuilder {
	b.truncated = truncated
	return b
}

// WithRenameFrom turns the change into a rename from oldPath.
func (b *FileChangeBuilder) WithRenameFrom(oldPath string) *FileChangeBuilder {
	b.changeType = entities.ChangeRenamed
	b.oldPath = oldPath
	return b
}

// Build creates the file change (satisfies testkit.Builder interface).
func (b *FileChangeBuilder) Build() interface{} {
	return b.BuildFileChange()
}

// BuildFileChange creates the file change with a concrete return type.
func (b *FileChangeBuilder) BuildFileChange() entities.FileChange {
	return entities.FileChange{
		Path:         b.path,
		ChangeType:   b.changeType,
		Group:        b.group,
		LinesAdded:   b.linesAdded,
		LinesRemoved: b.linesRemoved,
		DiffHunks:    append([]string(nil), b.diffHunks...),
		Truncated:    b.truncated,
		OldPath:      b.oldPath,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileChangeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "main.go"
	b.changeType = entities.ChangeModified
	b.group = entities.GroupStaged
	b.linesAdded = 1
	b.linesRemoved = 0
	b.diffHunks = nil
	b.truncated = false
	b.oldPath = ""
	return b
}

// Clone creates a deep copy of the FileChangeBuilder.
func (b *FileChangeBuilder) Clone() testkit.Builder {
	return &FileChangeBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:         b.path,
		changeType:   b.changeType,
		group:        b.group,
		linesAdded:   b.linesAdded,
		linesRemoved: b.linesRemoved,
		diffHunks:    append([]string(nil), b.diffHunks...),
		truncated:    b.truncated,
		oldPath:      b.oldPath,
	}
}
