package gitstate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/domain/repositories"
)

const (
	diffHeaderPrefix  = "diff --git "
	newFilePrefix     = "new file mode"
	deletedFilePrefix = "deleted file mode"
	renameFromPrefix  = "rename from "
	renameToPrefix    = "rename to "
	newPathPrefix     = "+++ "
	binaryFilesPrefix = "Binary files "
	binaryPatchMarker = "GIT binary patch"
	hunkHeaderPrefix  = "@@"
	devNull           = "/dev/null"
	srcPrefix         = "a/"
	dstPrefix         = "b/"
	noNewlineMarker   = '\\'
	defaultHunkLength = 1
)

// hunkHeaderPattern matches "@@ -start[,len] +start[,len] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -\d+(?:,(\d+))? \+\d+(?:,(\d+))? @@`)

// DiffSummarizer implements repositories.DiffSummarizer for git's unified diff format.
type DiffSummarizer struct{}

// NewDiffSummarizer creates a summarizer for `git diff` output.
func NewDiffSummarizer() repositories.DiffSummarizer {
	return &DiffSummarizer{}
}

// Summarize parses diffText file by file. Empty text yields an empty slice.
func (it *DiffSummarizer) Summarize(diffText string, maxHunkLines int) []entities.FileChange {
	parser := &diffParser{maxHunkLines: maxHunkLines}
	for _, line := range splitLines(diffText) {
		parser.feed(line)
	}
	return parser.finish()
}

// fileState accumulates one file section of the diff.
type fileState struct {
	change        entities.FileChange
	added         bool
	deleted       bool
	binary        bool
	capturedLines int
	hunk          []string
}

type diffParser struct {
	maxHunkLines int
	files        []entities.FileChange
	current      *fileState

	// remaining body lines of the open hunk, per side
	oldRemaining int
	newRemaining int
}

func (p *diffParser) feed(line string) {
	if p.inHunk() {
		p.feedHunkBody(line)
		return
	}

	if strings.HasPrefix(line, diffHeaderPrefix) {
		p.startFile(line)
		return
	}
	if p.current == nil {
		return
	}

	switch {
	case strings.HasPrefix(line, hunkHeaderPrefix):
		p.startHunk(line)
	case strings.HasPrefix(line, newFilePrefix):
		p.current.added = true
	case strings.HasPrefix(line, deletedFilePrefix):
		p.current.deleted = true
	case strings.HasPrefix(line, renameFromPrefix):
		p.current.change.OldPath = unquotePath(strings.TrimPrefix(line, renameFromPrefix))
	case strings.HasPrefix(line, renameToPrefix):
		p.current.change.Path = unquotePath(strings.TrimPrefix(line, renameToPrefix))
	case strings.HasPrefix(line, newPathPrefix):
		if path := headerPath(strings.TrimPrefix(line, newPathPrefix), dstPrefix); path != "" {
			p.current.change.Path = path
		}
	case strings.HasPrefix(line, binaryFilesPrefix), strings.HasPrefix(line, binaryPatchMarker):
		p.current.binary = true
	case line != "" && line[0] == noNewlineMarker:
		p.appendToLastHunk(line)
	}
}

// appendToLastHunk attaches a "\ No newline at end of file" marker that
// follows the last body line of a hunk.
func (p *diffParser) appendToLastHunk(line string) {
	hunks := p.current.change.DiffHunks
	if len(hunks) == 0 {
		return
	}
	if p.maxHunkLines > 0 && p.current.capturedLines >= p.maxHunkLines {
		p.current.change.Truncated = true
		return
	}
	p.current.capturedLines++
	hunks[len(hunks)-1] += "\n" + line
}

func (p *diffParser) inHunk() bool {
	return p.oldRemaining > 0 || p.newRemaining > 0
}

func (p *diffParser) feedHunkBody(line string) {
	if line == "" {
		// context line whose leading space was stripped
		line = " "
	}

	switch line[0] {
	case '+':
		p.current.change.LinesAdded++
		p.newRemaining--
	case '-':
		p.current.change.LinesRemoved++
		p.oldRemaining--
	case noNewlineMarker:
	default:
		p.oldRemaining--
		p.newRemaining--
	}

	p.capture(line)
	if !p.inHunk() {
		p.oldRemaining, p.newRemaining = 0, 0
		p.closeHunk()
	}
}

func (p *diffParser) startFile(header string) {
	p.closeFile()
	p.current = &fileState{
		change: entities.FileChange{
			Path:       pathFromDiffHeader(strings.TrimPrefix(header, diffHeaderPrefix)),
			ChangeType: entities.ChangeModified,
		},
	}
}

func (p *diffParser) startHunk(header string) {
	p.closeHunk()

	m := hunkHeaderPattern.FindStringSubmatch(header)
	if m == nil {
		return
	}
	p.oldRemaining = hunkLength(m[1])
	p.newRemaining = hunkLength(m[2])
	p.capture(header)
	if !p.inHunk() {
		p.closeHunk()
	}
}

// capture keeps a verbatim hunk line while the per-file cap allows it.
func (p *diffParser) capture(line string) {
	state := p.current
	if p.maxHunkLines > 0 && state.capturedLines >= p.maxHunkLines {
		state.change.Truncated = true
		return
	}
	state.capturedLines++
	state.hunk = append(state.hunk, line)
}

func (p *diffParser) closeHunk() {
	if p.current == nil || len(p.current.hunk) == 0 {
		return
	}
	p.current.change.DiffHunks = append(p.current.change.DiffHunks, strings.Join(p.current.hunk, "\n"))
	p.current.hunk = nil
}

func (p *diffParser) closeFile() {
	if p.current == nil {
		return
	}
	p.closeHunk()

	change := p.current.change
	switch {
	case p.current.binary:
		change.ChangeType = entities.ChangeBinary
		change.LinesAdded, change.LinesRemoved = 0, 0
	case change.OldPath != "":
		change.ChangeType = entities.ChangeRenamed
	case p.current.added:
		change.ChangeType = entities.ChangeAdded
	case p.current.deleted:
		change.ChangeType = entities.ChangeDeleted
	}
	if change.ChangeType != entities.ChangeRenamed {
		change.OldPath = ""
	}

	p.files = append(p.files, change)
	p.current = nil
}

func (p *diffParser) finish() []entities.FileChange {
	p.oldRemaining, p.newRemaining = 0, 0
	p.closeFile()
	if p.files == nil {
		return []entities.FileChange{}
	}
	return p.files
}

// splitLines splits on "\n" and drops the empty element after a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func hunkLength(raw string) int {
	if raw == "" {
		return defaultHunkLength
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultHunkLength
	}
	return n
}

// pathFromDiffHeader extracts the destination path from "a/X b/Y". When
// both sides name the same file the header splits exactly in the middle,
// which also handles paths containing " b/".
func pathFromDiffHeader(rest string) string {
	if strings.HasPrefix(rest, `"`) {
		if fields := splitQuoted(rest); len(fields) == 2 { //nolint:mnd // a/ and b/ sides
			return strings.TrimPrefix(fields[1], dstPrefix)
		}
	}

	if len(rest)%2 == 1 {
		half := len(rest) / 2 //nolint:mnd // middle of "a/X b/X"
		left, right := rest[:half], rest[half+1:]
		if rest[half] == ' ' && strings.TrimPrefix(left, srcPrefix) == strings.TrimPrefix(right, dstPrefix) {
			return strings.TrimPrefix(right, dstPrefix)
		}
	}

	if idx := strings.LastIndex(rest, " "+dstPrefix); idx >= 0 {
		return rest[idx+1+len(dstPrefix):]
	}
	return rest
}

// headerPath reads the path of a "---"/"+++" line, "" for /dev/null.
func headerPath(raw, prefix string) string {
	raw = unquotePath(strings.TrimRight(raw, "\t"))
	if raw == devNull {
		return ""
	}
	return strings.TrimPrefix(raw, prefix)
}

// unquotePath undoes git's C-style quoting of unusual path names.
func unquotePath(raw string) string {
	if len(raw) < 2 || !strings.HasPrefix(raw, `"`) || !strings.HasSuffix(raw, `"`) {
		return raw
	}
	unquoted, err := strconv.Unquote(raw)
	if err != nil {
		return raw
	}
	return unquoted
}

// splitQuoted splits a header made of two possibly quoted paths.
func splitQuoted(rest string) []string {
	var fields []string
	for rest != "" {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			break
		}
		if rest[0] != '"' {
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				fields = append(fields, rest)
				break
			}
			fields = append(fields, rest[:end])
			rest = rest[end:]
			continue
		}
		end := closingQuote(rest)
		if end < 0 {
			return nil
		}
		fields = append(fields, unquotePath(rest[:end+1]))
		rest = rest[end+1:]
	}
	return fields
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
