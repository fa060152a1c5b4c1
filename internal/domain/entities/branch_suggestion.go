package entities

// BranchPrefix is the conventional category in front of a branch name.
type BranchPrefix string

const (
	PrefixFix      BranchPrefix = "fix"
	PrefixFeature  BranchPrefix = "feature"
	PrefixRefactor BranchPrefix = "refactor"
	PrefixDocs     BranchPrefix = "docs"
	PrefixChore    BranchPrefix = "chore"
)

// BranchSuggestion is a suggested branch name split into prefix and slug.
type BranchSuggestion struct {
	Prefix BranchPrefix `json:"prefix"`
	Slug   string       `json:"slug"`
}

// String renders the suggestion as "prefix/slug".
func (s BranchSuggestion) String() string {
	return string(s.Prefix) + "/" + s.Slug
}
