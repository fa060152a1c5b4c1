package entities

// Category is one row of the branch classification table. A context word
// matches a keyword when it starts with it; Redundant lists words dropped
// from the slug because the prefix already says them.
type Category struct {
	Prefix    BranchPrefix `yaml:"prefix"    json:"prefix"`
	Keywords  []string     `yaml:"keywords"  json:"keywords"`
	Redundant []string     `yaml:"redundant" json:"redundant"`
}

// Heuristics holds every table and threshold used for classification,
// slug building, diff capture and commit-quality flags.
type Heuristics struct {
	// Categories are evaluated in order, the first match wins.
	Categories    []Category `yaml:"categories"`
	StopWords     []string   `yaml:"stop_words"`
	MaxSlugWords  int        `yaml:"max_slug_words"`
	MaxSlugLength int        `yaml:"max_slug_length"`

	Denylist         []string `yaml:"denylist"`
	MinSubjectLength int      `yaml:"min_subject_length"`
	MaxFilesChanged  int      `yaml:"max_files_changed"`
	MaxLinesChanged  int      `yaml:"max_lines_changed"`

	// MaxHunkLines caps the captured hunk lines per file; zero or less keeps everything.
	MaxHunkLines int `yaml:"max_hunk_lines"`
}

//nolint:mnd // default thresholds
func DefaultHeuristics() Heuristics {
	return Heuristics{
		Categories: []Category{
			{
				Prefix:    PrefixFix,
				Keywords:  []string{"fix", "bug", "issue"},
				Redundant: []string{"fix", "fixes", "fixed", "fixing"},
			},
			{
				Prefix:    PrefixFeature,
				Keywords:  []string{"add", "implement", "new", "feature"},
				Redundant: []string{"feature", "features"},
			},
			{
				Prefix:    PrefixRefactor,
				Keywords:  []string{"refactor", "clean", "restructure"},
				Redundant: []string{"refactor", "refactors", "refactored", "refactoring"},
			},
			{
				Prefix:    PrefixDocs,
				Keywords:  []string{"doc", "readme"},
				Redundant: []string{"doc", "docs"},
			},
		},
		StopWords:        []string{"a", "the", "an", "to", "for", "and", "of", "in", "on"},
		MaxSlugWords:     5,
		MaxSlugLength:    50,
		Denylist:         []string{"wip", "update", "fix", "misc", "changes"},
		MinSubjectLength: 10,
		MaxFilesChanged:  20,
		MaxLinesChanged:  500,
		MaxHunkLines:     200,
	}
}
