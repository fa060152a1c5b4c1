package entities

// ChangeType classifies how a single path changed.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
	ChangeRenamed  ChangeType = "renamed"
	ChangeBinary   ChangeType = "binary"
)

// StatusGroup tells which part of the working tree a status entry came from.
type StatusGroup string

const (
	GroupStaged    StatusGroup = "staged"
	GroupUnstaged  StatusGroup = "unstaged"
	GroupUntracked StatusGroup = "untracked"
)

// FileChange is one file's entry in a status listing or a parsed diff.
// Status entries only carry Path, ChangeType, Group and OldPath.
type FileChange struct {
	Path         string      `json:"path"`
	ChangeType   ChangeType  `json:"changeType"`
	Group        StatusGroup `json:"group,omitempty"`
	LinesAdded   int         `json:"linesAdded"`
	LinesRemoved int         `json:"linesRemoved"`
	DiffHunks    []string    `json:"diffHunks,omitempty"`
	Truncated    bool        `json:"truncated"`
	OldPath      string      `json:"oldPath,omitempty"` // renames only
}

// TotalLines returns the number of added plus removed lines.
func (f FileChange) TotalLines() int {
	return f.LinesAdded + f.LinesRemoved
}

// FilterByGroup returns the entries of changes belonging to group, keeping their order.
func FilterByGroup(changes []FileChange, group StatusGroup) []FileChange {
	result := make([]FileChange, 0, len(changes))
	for _, change := range changes {
		if change.Group == group {
			result = append(result, change)
		}
	}
	return result
}
