//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const defaultCommitHash = "0123456789abcdef0123456789abcdef01234567"

// CommitRecordBuilder helps create test commit records with a fluent interface.
type CommitRecordBuilder struct {
	*testkit.BaseBuilder
	hash         string
	author       string
	authorDate   time.Time
	subject      string
	bodyLines    []string
	filesChanged int
	linesAdded   int
	linesRemoved int
}

// NewCommitRecordBuilder creates a new commit record builder with sensible defaults.
func NewCommitRecordBuilder() *CommitRecordBuilder {
	return &CommitRecordBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		hash:         defaultCommitHash,
		author:       "Jane Doe",
		authorDate:   time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
		subject:      "Add retry to the repository reader",
		filesChanged: 1,
		linesAdded:   10,
		linesRemoved: 2,
	}
}

// WithHash sets the full commit hash.
func (b *CommitRecordBuilder) WithHash(hash string) *CommitRecordBuilder {
	b.hash = hash
	return b
}

// WithSubject sets the subject line.
func (b *CommitRecordBuilder) WithSubject(subject string) *CommitRecordBuilder {
	b.subject = subject
	return b
}

// WithBody sets the body lines.
func (b *CommitRecordBuilder) WithBody(lines ...string) *CommitRecordBuilder {
	b.bodyLines = lines
	return b
}

// WithStats sets the shortstat counters.
func (b *CommitRecordBuilder) WithStats(files, added, removed int) *CommitRecordBuilder {
	b.filesChanged = files
	b.linesAdded = added
	b.linesRemoved = removed
	return b
}

// WithAuthorDate sets the author date.
func (b *CommitRecordBuilder) WithAuthorDate(date time.Time) *CommitRecordBuilder {
	b.authorDate = date
	return b
}

// Build creates the commit record (satisfies testkit.Builder interface).
func (b *CommitRecordBuilder) Build() interface{} {
	return b.BuildCommitRecord()
}

// BuildCommitRecord creates the commit record with a concrete return type.
func (b *CommitRecordBuilder) BuildCommitRecord() entities.CommitRecord {
	return entities.CommitRecord{
		Hash:         b.hash,
		ShortHash:    b.hash[:7],
		Author:       b.author,
		AuthorDate:   b.authorDate,
		SubjectLine:  b.subject,
		BodyLines:    append([]string{}, b.bodyLines...),
		FilesChanged: b.filesChanged,
		LinesAdded:   b.linesAdded,
		LinesRemoved: b.linesRemoved,
		Flags:        []entities.CommitFlag{},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewCommitRecordBuilder()
	fresh.BaseBuilder = b.BaseBuilder
	*b = *fresh
	return b
}

// Clone creates a deep copy of the CommitRecordBuilder.
func (b *CommitRecordBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	clone.bodyLines = append([]string(nil), b.bodyLines...)
	return &clone
}
