package entities

import (
	"strings"
	"unicode/utf8"
)

// QualityRules flags commits whose subject or size makes history hard to read.
type QualityRules struct {
	denylist         map[string]struct{}
	minSubjectLength int
	maxFilesChanged  int
	maxLinesChanged  int
}

// NewQualityRules builds the rules from the denylist and thresholds of h.
func NewQualityRules(h Heuristics) *QualityRules {
	denylist := make(map[string]struct{}, len(h.Denylist))
	for _, entry := range h.Denylist {
		denylist[normalizeSubject(entry)] = struct{}{}
	}
	return &QualityRules{
		denylist:         denylist,
		minSubjectLength: h.MinSubjectLength,
		maxFilesChanged:  h.MaxFilesChanged,
		maxLinesChanged:  h.MaxLinesChanged,
	}
}

// Flags returns the issues found on record, always in the order
// TOO_SHORT, LOW_INFO, LARGE_COMMIT.
func (it *QualityRules) Flags(record CommitRecord) []CommitFlag {
	flags := make([]CommitFlag, 0)

	subject := strings.TrimSpace(record.SubjectLine)
	if utf8.RuneCountInString(subject) < it.minSubjectLength {
		flags = append(flags, FlagTooShort)
	}
	if _, denied := it.denylist[normalizeSubject(subject)]; denied {
		flags = append(flags, FlagLowInfo)
	}
	if record.FilesChanged > it.maxFilesChanged ||
		record.LinesAdded+record.LinesRemoved > it.maxLinesChanged {
		flags = append(flags, FlagLargeCommit)
	}

	return flags
}

// FlagSuggestion returns the advice shown next to a flagged commit.
func FlagSuggestion(flag CommitFlag) string {
	switch flag {
	case FlagTooShort:
		return "Add more context about what changed and why"
	case FlagLowInfo:
		return "Use descriptive messages that explain what and why"
	case FlagLargeCommit:
		return "Consider breaking large commits into smaller, focused ones"
	default:
		return ""
	}
}

// normalizeSubject makes "WIP", "wip." and " Update! " compare equal to their denylist entries.
func normalizeSubject(subject string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(subject)), ".!:;, ")
}
