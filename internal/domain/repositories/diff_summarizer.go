package repositories

import "github.com/rios0rios0/gitassist/internal/domain/entities"

// DiffSummarizer parses raw unified diff text into per-file records, in
// input order. maxHunkLines caps the captured hunk lines per file.
type DiffSummarizer interface {
	Summarize(diffText string, maxHunkLines int) []entities.FileChange
}
