package entities

import "time"

// CommitFlag marks a commit-quality issue.
type CommitFlag string

const (
	FlagTooShort    CommitFlag = "TOO_SHORT"
	FlagLowInfo     CommitFlag = "LOW_INFO"
	FlagLargeCommit CommitFlag = "LARGE_COMMIT"
)

// CommitRecord is one commit read from history, with its shortstat and quality flags.
type CommitRecord struct {
	Hash         string       `json:"hash"`
	ShortHash    string       `json:"shortHash"`
	Author       string       `json:"author"`
	AuthorDate   time.Time    `json:"authorDate"`
	SubjectLine  string       `json:"subjectLine"`
	BodyLines    []string     `json:"bodyLines"`
	FilesChanged int          `json:"filesChanged"`
	LinesAdded   int          `json:"linesAdded"`
	LinesRemoved int          `json:"linesRemoved"`
	Flags        []CommitFlag `json:"flags"`
}

// HasFlag reports whether the record carries flag.
func (r CommitRecord) HasFlag(flag CommitFlag) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
