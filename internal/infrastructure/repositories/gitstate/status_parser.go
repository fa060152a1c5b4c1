package gitstate

import (
	"strings"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

const (
	statusUntracked = '?'
	statusIgnored   = '!'
	statusUnchanged = ' '
	statusRenamed   = 'R'
	statusCopied    = 'C'
	statusUnmerged  = 'U'

	// "XY " before the path
	statusPathOffset = 3
)

// parseStatus parses `git status --porcelain=v1 -z`. Entries are NUL
// separated and a rename or copy is followed by an extra field holding the
// original path. Staged entries come first, then unstaged, then untracked.
func parseStatus(output string) []entities.FileChange {
	var staged, unstaged, untracked []entities.FileChange

	fields := strings.Split(output, "\x00")
	for i := 0; i < len(fields); i++ {
		entry := fields[i]
		if len(entry) <= statusPathOffset {
			continue
		}

		x, y := entry[0], entry[1]
		path := entry[statusPathOffset:]

		oldPath := ""
		if (x == statusRenamed || x == statusCopied) && i+1 < len(fields) {
			i++
			oldPath = fields[i]
		}

		switch {
		case x == statusUntracked && y == statusUntracked:
			untracked = append(untracked, entities.FileChange{
				Path:       path,
				ChangeType: entities.ChangeAdded,
				Group:      entities.GroupUntracked,
			})
		case x == statusIgnored:
			continue
		case isUnmerged(x, y):
			unstaged = append(unstaged, entities.FileChange{
				Path:       path,
				ChangeType: entities.ChangeModified,
				Group:      entities.GroupUnstaged,
			})
		default:
			if x != statusUnchanged {
				change := entities.FileChange{
					Path:       path,
					ChangeType: changeTypeFromStatus(x),
					Group:      entities.GroupStaged,
				}
				if x == statusRenamed {
					change.OldPath = oldPath
				}
				staged = append(staged, change)
			}
			if y != statusUnchanged {
				unstaged = append(unstaged, entities.FileChange{
					Path:       path,
					ChangeType: changeTypeFromStatus(y),
					Group:      entities.GroupUnstaged,
				})
			}
		}
	}

	result := make([]entities.FileChange, 0, len(staged)+len(unstaged)+len(untracked))
	result = append(result, staged...)
	result = append(result, unstaged...)
	return append(result, untracked...)
}

// isUnmerged matches the porcelain codes of a path with merge conflicts.
func isUnmerged(x, y byte) bool {
	return x == statusUnmerged || y == statusUnmerged ||
		(x == 'A' && y == 'A') || (x == 'D' && y == 'D')
}

func changeTypeFromStatus(code byte) entities.ChangeType {
	switch code {
	case 'A', statusCopied:
		return entities.ChangeAdded
	case 'D':
		return entities.ChangeDeleted
	case statusRenamed:
		return entities.ChangeRenamed
	default:
		// 'M' and 'T' (type change)
		return entities.ChangeModified
	}
}
