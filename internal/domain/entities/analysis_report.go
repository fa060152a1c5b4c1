package entities

// ReviewSummary counts the staged changes of a review.
type ReviewSummary struct {
	FilesChanged   int `json:"filesChanged"`
	LinesAdded     int `json:"linesAdded"`
	LinesRemoved   int `json:"linesRemoved"`
	TruncatedFiles int `json:"truncatedFiles"`
	Unstaged       int `json:"unstaged"`
	Untracked      int `json:"untracked"`
}

// ReviewReport is the drafting context for a commit message: the staged
// status entries plus the parsed staged diff.
type ReviewReport struct {
	Staged  []FileChange  `json:"staged"`
	Files   []FileChange  `json:"files"`
	Summary ReviewSummary `json:"summary"`
}

// StatusReport lists the working tree status by group.
type StatusReport struct {
	Staged    []FileChange `json:"staged"`
	Unstaged  []FileChange `json:"unstaged"`
	Untracked []FileChange `json:"untracked"`
	Clean     bool         `json:"clean"`
}

// HistorySummary counts the commits analyzed and the flags they carry.
type HistorySummary struct {
	Requested       int `json:"requested"`
	CommitsAnalyzed int `json:"commitsAnalyzed"`
	IssuesFound     int `json:"issuesFound"`
	TooShort        int `json:"tooShort"`
	LowInfo         int `json:"lowInfo"`
	LargeCommit     int `json:"largeCommit"`
}

// HistoryReport is the result of a history analysis, most recent commit first.
type HistoryReport struct {
	Commits []CommitRecord `json:"commits"`
	Summary HistorySummary `json:"summary"`
}

// BranchReport carries a branch suggestion together with the text it came from.
type BranchReport struct {
	Context    string           `json:"context"`
	Suggestion BranchSuggestion `json:"suggestion"`
	BranchName string           `json:"branchName"`
}

// SelfTestCheck is one built-in fixture and its outcome.
type SelfTestCheck struct {
	Name     string `json:"name"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
}

// SelfTestReport is the outcome of the built-in self-check.
type SelfTestReport struct {
	Checks []SelfTestCheck `json:"checks"`
	Passed bool            `json:"passed"`
}

// Count tallies a flag into the summary.
func (s *HistorySummary) Count(flag CommitFlag) {
	s.IssuesFound++
	switch flag {
	case FlagTooShort:
		s.TooShort++
	case FlagLowInfo:
		s.LowInfo++
	case FlagLargeCommit:
		s.LargeCommit++
	}
}

// Add records a check, deciding its outcome by comparing Expected and Actual.
func (r *SelfTestReport) Add(check SelfTestCheck) {
	check.Passed = check.Expected == check.Actual
	r.Checks = append(r.Checks, check)
	r.Passed = r.Passed && check.Passed
}
