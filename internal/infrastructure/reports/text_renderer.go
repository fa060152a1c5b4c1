package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

const (
	ruleWidth    = 70
	draftingHint = "Use this context to write a meaningful commit message."
	timeLayout   = "2006-01-02 15:04:05 -0700"
)

//nolint:gochecknoglobals // rendering rules
var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("-", ruleWidth)
)

// TextRenderer writes the human-readable reports.
type TextRenderer struct{}

// NewTextRenderer creates the human-readable renderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// RenderReview writes the staged-changes review used as drafting context.
func (it *TextRenderer) RenderReview(w io.Writer, report *entities.ReviewReport) error {
	var b strings.Builder

	banner(&b, "STAGED CHANGES REVIEW")
	s := report.Summary
	fmt.Fprintf(&b, "Files changed: %d\n", s.FilesChanged)
	fmt.Fprintf(&b, "Lines added:   +%d\n", s.LinesAdded)
	fmt.Fprintf(&b, "Lines removed: -%d\n", s.LinesRemoved)
	fmt.Fprintf(&b, "Not staged:    %d unstaged, %d untracked\n", s.Unstaged, s.Untracked)

	if len(report.Files) == 0 {
		b.WriteString("\nNo staged changes. Use \"git add\" first.\n")
	} else {
		section(&b, "STAGED FILES:")
		b.WriteString(fileTable(report.Files))
		b.WriteString("\n")

		section(&b, "CHANGES (git diff --staged):")
		for i, file := range report.Files {
			if i > 0 {
				b.WriteString("\n")
			}
			writeFileHunks(&b, file)
		}
	}

	b.WriteString("\n")
	banner(&b, draftingHint)

	_, err := io.WriteString(w, strings.TrimRight(b.String(), "\n")+"\n")
	return err
}

// RenderStatus writes the working tree status grouped like `git status`.
func (it *TextRenderer) RenderStatus(w io.Writer, report *entities.StatusReport) error {
	var b strings.Builder

	banner(&b, "REPOSITORY STATUS")
	if report.Clean {
		b.WriteString("Working directory clean\n")
	}
	writeStatusGroup(&b, "Staged", report.Staged)
	writeStatusGroup(&b, "Unstaged", report.Unstaged)
	writeStatusGroup(&b, "Untracked", report.Untracked)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHistory writes the commit table followed by the issues found.
func (it *TextRenderer) RenderHistory(w io.Writer, report *entities.HistoryReport) error {
	var b strings.Builder

	banner(&b, "COMMIT HISTORY ANALYSIS")
	s := report.Summary
	fmt.Fprintf(&b, "Analyzed %d commits (requested %d), found %d potential issues\n",
		s.CommitsAnalyzed, s.Requested, s.IssuesFound)
	fmt.Fprintf(&b, "TOO_SHORT: %d | LOW_INFO: %d | LARGE_COMMIT: %d\n",
		s.TooShort, s.LowInfo, s.LargeCommit)

	section(&b, "RECENT COMMITS:")
	if len(report.Commits) == 0 {
		b.WriteString("  (no commits)\n")
	} else {
		b.WriteString(commitTable(report.Commits))
		b.WriteString("\n")
	}

	section(&b, "ISSUES:")
	if s.IssuesFound == 0 {
		b.WriteString("No issues found. Commit history looks good.\n")
	}
	for _, commit := range report.Commits {
		for _, flag := range commit.Flags {
			fmt.Fprintf(&b, "%s %s: %q\n", commit.ShortHash, flag, commit.SubjectLine)
			fmt.Fprintf(&b, "  -> %s\n", entities.FlagSuggestion(flag))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderBranch writes the suggested branch name.
func (it *TextRenderer) RenderBranch(w io.Writer, report *entities.BranchReport) error {
	_, err := fmt.Fprintf(w, "Suggested Branch Name: %s\n", report.BranchName)
	return err
}

// RenderSelfTest writes one line per built-in check and the overall verdict.
func (it *TextRenderer) RenderSelfTest(w io.Writer, report *entities.SelfTestReport) error {
	var b strings.Builder

	banner(&b, "SELF-TEST")
	for _, check := range report.Checks {
		verdict := "PASS"
		if !check.Passed {
			verdict = "FAIL"
		}
		fmt.Fprintf(&b, "[%s] %s: %q -> %q\n", verdict, check.Name, check.Input, check.Actual)
		if !check.Passed {
			fmt.Fprintf(&b, "       expected %q\n", check.Expected)
		}
	}
	if report.Passed {
		b.WriteString("\nAll checks passed.\n")
	} else {
		b.WriteString("\nSome checks failed.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func banner(b *strings.Builder, title string) {
	b.WriteString(heavyRule + "\n" + title + "\n" + heavyRule + "\n\n")
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + lightRule + "\n" + title + "\n" + lightRule + "\n")
}

func writeStatusGroup(b *strings.Builder, title string, changes []entities.FileChange) {
	if len(changes) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d):\n", title, len(changes))
	for _, change := range changes {
		fmt.Fprintf(b, "  %-8s %s\n", change.ChangeType, displayPath(change))
	}
}

func writeFileHunks(b *strings.Builder, file entities.FileChange) {
	fmt.Fprintf(b, ">>> %s (%s, +%d -%d)\n",
		displayPath(file), file.ChangeType, file.LinesAdded, file.LinesRemoved)
	for _, hunk := range file.DiffHunks {
		b.WriteString(hunk + "\n")
	}
	if file.Truncated {
		b.WriteString("... (remaining hunk lines truncated)\n")
	}
}

func fileTable(files []entities.FileChange) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"TYPE", "PATH", "ADDED", "REMOVED", "NOTE"})
	for _, file := range files {
		note := ""
		if file.Truncated {
			note = "truncated"
		}
		tbl.AppendRow(table.Row{
			file.ChangeType, displayPath(file),
			fmt.Sprintf("+%d", file.LinesAdded), fmt.Sprintf("-%d", file.LinesRemoved), note,
		})
	}
	return tbl.Render()
}

func commitTable(commits []entities.CommitRecord) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"HASH", "DATE", "AUTHOR", "FILES", "LINES", "FLAGS", "SUBJECT"})
	for _, commit := range commits {
		flags := make([]string, 0, len(commit.Flags))
		for _, flag := range commit.Flags {
			flags = append(flags, string(flag))
		}
		tbl.AppendRow(table.Row{
			commit.ShortHash,
			commit.AuthorDate.Format(timeLayout),
			commit.Author,
			commit.FilesChanged,
			fmt.Sprintf("+%d -%d", commit.LinesAdded, commit.LinesRemoved),
			strings.Join(flags, ","),
			commit.SubjectLine,
		})
	}
	return tbl.Render()
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false
	return tbl
}

func displayPath(change entities.FileChange) string {
	if change.OldPath != "" {
		return change.OldPath + " -> " + change.Path
	}
	return change.Path
}
