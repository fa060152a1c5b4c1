package entities

import (
	"strings"
	"unicode"
)

const slugSeparator = "-"

// BranchNamer turns free-text intent into a conventional branch name.
type BranchNamer struct {
	categories    []Category
	stopWords     map[string]struct{}
	maxSlugWords  int
	maxSlugLength int
}

// NewBranchNamer builds a namer from the classification and slug tables of h.
func NewBranchNamer(h Heuristics) *BranchNamer {
	stopWords := make(map[string]struct{}, len(h.StopWords))
	for _, w := range h.StopWords {
		stopWords[strings.ToLower(w)] = struct{}{}
	}
	return &BranchNamer{
		categories:    h.Categories,
		stopWords:     stopWords,
		maxSlugWords:  h.MaxSlugWords,
		maxSlugLength: h.MaxSlugLength,
	}
}

// Suggest classifies text and derives the slug from its significant words.
func (it *BranchNamer) Suggest(text string) (BranchSuggestion, error) {
	if strings.TrimSpace(text) == "" {
		return BranchSuggestion{}, &InvalidInputError{Field: "context", Message: "must not be empty"}
	}

	words := tokenize(text)
	significant := it.withoutStopWords(words)
	if len(significant) == 0 {
		return BranchSuggestion{}, &InvalidInputError{
			Field:   "context",
			Message: "no significant words left after removing stop-words",
		}
	}

	category := it.classify(words)

	slugWords := withoutWords(significant, category.Redundant)
	if len(slugWords) == 0 {
		// the prefix was the whole intent, e.g. "fix"
		slugWords = significant
	}

	return BranchSuggestion{
		Prefix: category.Prefix,
		Slug:   it.buildSlug(slugWords),
	}, nil
}

// classify returns the first category, in table order, with a keyword
// matching any word of the context.
func (it *BranchNamer) classify(words []string) Category {
	for _, category := range it.categories {
		for _, keyword := range category.Keywords {
			keyword = strings.ToLower(keyword)
			for _, word := range words {
				if strings.HasPrefix(word, keyword) {
					return category
				}
			}
		}
	}
	return Category{Prefix: PrefixChore}
}

func (it *BranchNamer) withoutStopWords(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := it.stopWords[w]; !stop {
			result = append(result, w)
		}
	}
	return result
}

// buildSlug joins up to maxSlugWords words and keeps whole words while the
// slug fits maxSlugLength. A single word longer than the bound is cut.
func (it *BranchNamer) buildSlug(words []string) string {
	if it.maxSlugWords > 0 && len(words) > it.maxSlugWords {
		words = words[:it.maxSlugWords]
	}

	slug := ""
	for _, word := range words {
		candidate := word
		if slug != "" {
			candidate = slug + slugSeparator + word
		}
		if it.maxSlugLength > 0 && len(candidate) > it.maxSlugLength {
			break
		}
		slug = candidate
	}

	if slug == "" {
		slug = words[0][:it.maxSlugLength]
	}
	return slug
}

// tokenize lowercases text and splits it on every run of characters outside [a-z0-9].
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
}

func withoutWords(words, drop []string) []string {
	if len(drop) == 0 {
		return words
	}
	dropSet := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		dropSet[strings.ToLower(d)] = struct{}{}
	}
	result := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := dropSet[w]; !ok {
			result = append(result, w)
		}
	}
	return result
}
