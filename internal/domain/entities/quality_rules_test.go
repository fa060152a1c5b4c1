//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/test/domain/entitybuilders"
)

func TestQualityRulesFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   entities.CommitRecord
		expected []entities.CommitFlag
	}{
		{
			name:     "should flag a work-in-progress subject as low information",
			record:   entitybuilders.NewCommitRecordBuilder().WithSubject("wip").BuildCommitRecord(),
			expected: []entities.CommitFlag{entities.FlagTooShort, entities.FlagLowInfo},
		},
		{
			name: "should not flag a descriptive subject",
			record: entitybuilders.NewCommitRecordBuilder().
				WithSubject("Add OAuth2 refresh-token rotation with retry/backoff").BuildCommitRecord(),
			expected: []entities.CommitFlag{},
		},
		{
			name:     "should match the denylist ignoring case and trailing punctuation",
			record:   entitybuilders.NewCommitRecordBuilder().WithSubject("  Changes. ").BuildCommitRecord(),
			expected: []entities.CommitFlag{entities.FlagTooShort, entities.FlagLowInfo},
		},
		{
			name:     "should not treat a longer subject starting with a denied word as low information",
			record:   entitybuilders.NewCommitRecordBuilder().WithSubject("update docs").BuildCommitRecord(),
			expected: []entities.CommitFlag{},
		},
		{
			name: "should flag commits touching more than twenty files",
			record: entitybuilders.NewCommitRecordBuilder().
				WithSubject("Rename the storage package").WithStats(21, 30, 30).BuildCommitRecord(),
			expected: []entities.CommitFlag{entities.FlagLargeCommit},
		},
		{
			name: "should flag commits changing more than five hundred lines",
			record: entitybuilders.NewCommitRecordBuilder().
				WithSubject("Vendor the parser tables").WithStats(2, 300, 201).BuildCommitRecord(),
			expected: []entities.CommitFlag{entities.FlagLargeCommit},
		},
		{
			name: "should not flag exactly five hundred changed lines",
			record: entitybuilders.NewCommitRecordBuilder().
				WithSubject("Vendor the parser tables").WithStats(20, 250, 250).BuildCommitRecord(),
			expected: []entities.CommitFlag{},
		},
		{
			name: "should carry every flag at once",
			record: entitybuilders.NewCommitRecordBuilder().
				WithSubject("fix").WithStats(25, 10, 10).BuildCommitRecord(),
			expected: []entities.CommitFlag{entities.FlagTooShort, entities.FlagLowInfo, entities.FlagLargeCommit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			rules := entities.NewQualityRules(entities.DefaultHeuristics())

			// when
			flags := rules.Flags(tt.record)

			// then
			assert.Equal(t, tt.expected, flags)
		})
	}
}

func TestFlagSuggestion(t *testing.T) {
	t.Parallel()

	t.Run("should give advice for every flag", func(t *testing.T) {
		t.Parallel()

		for _, flag := range []entities.CommitFlag{
			entities.FlagTooShort, entities.FlagLowInfo, entities.FlagLargeCommit,
		} {
			assert.NotEmpty(t, entities.FlagSuggestion(flag), flag)
		}
	})
}
