//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

// StubDiffSummarizer implements repositories.DiffSummarizer returning preset files.
type StubDiffSummarizer struct {
	Files []entities.FileChange

	// spy: inputs received
	Texts        []string
	MaxHunkLines []int
}

var _ repositories.DiffSummarizer = (*StubDiffSummarizer)(nil)

func (s *StubDiffSummarizer) Summarize(diffText string, maxHunkLines int) []entities.FileChange {
	s.Texts = append(s.Texts, diffText)
	s.MaxHunkLines = append(s.MaxHunkLines, maxHunkLines)
	if s.Files == nil {
		return []entities.FileChange{}
	}
	return s.Files
}
