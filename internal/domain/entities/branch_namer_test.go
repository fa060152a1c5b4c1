//go:build unit

package entities_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestBranchNamerSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		context  string
		prefix   entities.BranchPrefix
		expected string
	}{
		{"should classify bug fixes and drop the redundant verb", "fixing login bug", entities.PrefixFix, "login-bug"},
		{"should classify additions as features", "adding search", entities.PrefixFeature, "adding-search"},
		{"should classify refactors", "refactor auth code", entities.PrefixRefactor, "auth-code"},
		{"should classify documentation work", "update the readme", entities.PrefixDocs, "update-readme"},
		{"should fall back to chore", "bump dependencies to latest", entities.PrefixChore, "bump-dependencies-latest"},
		{
			"should prefer fix over feature regardless of word position",
			"add a fix for the new parser", entities.PrefixFix, "add-new-parser",
		},
		{
			"should collapse punctuation into single hyphens",
			"Fix: crash on /api/users (500)!", entities.PrefixFix, "crash-api-users-500",
		},
		{
			"should keep at most five significant words",
			"implement user profile page with avatar upload support", entities.PrefixFeature,
			"implement-user-profile-page-with",
		},
		{
			"should stop before the word that exceeds the length bound",
			"refactor internationalization localization configuration subsystem", entities.PrefixRefactor,
			"internationalization-localization-configuration",
		},
		{"should keep the prefix word when nothing else is left", "fix", entities.PrefixFix, "fix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			namer := entities.NewBranchNamer(entities.DefaultHeuristics())

			// when
			suggestion, err := namer.Suggest(tt.context)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, suggestion.Prefix)
			assert.Equal(t, tt.expected, suggestion.Slug)
			assert.Regexp(t, slugPattern, suggestion.Slug)
			assert.LessOrEqual(t, len(suggestion.Slug), 50)
		})
	}
}

func TestBranchNamerSuggestErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   \t\n", "the a an", "!!! ???"} {
		t.Run("should reject "+strings.TrimSpace(input), func(t *testing.T) {
			t.Parallel()

			// given
			namer := entities.NewBranchNamer(entities.DefaultHeuristics())

			// when
			_, err := namer.Suggest(input)

			// then
			var invalidInput *entities.InvalidInputError
			require.ErrorAs(t, err, &invalidInput)
			assert.Equal(t, "context", invalidInput.Field)
		})
	}
}

func TestBranchNamerLongWord(t *testing.T) {
	t.Parallel()

	t.Run("should cut a single word longer than the bound", func(t *testing.T) {
		t.Parallel()

		// given
		namer := entities.NewBranchNamer(entities.DefaultHeuristics())

		// when
		suggestion, err := namer.Suggest(strings.Repeat("z", 80))

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PrefixChore, suggestion.Prefix)
		assert.Equal(t, strings.Repeat("z", 50), suggestion.Slug)
	})
}

func TestBranchNamerCustomTables(t *testing.T) {
	t.Parallel()

	t.Run("should follow the configured category order and stop-words", func(t *testing.T) {
		t.Parallel()

		// given
		h := entities.DefaultHeuristics()
		h.Categories = []entities.Category{
			{Prefix: entities.PrefixDocs, Keywords: []string{"doc"}, Redundant: []string{"docs"}},
			{Prefix: entities.PrefixFix, Keywords: []string{"fix"}},
		}
		h.StopWords = []string{"typo"}
		h.MaxSlugWords = 2
		namer := entities.NewBranchNamer(h)

		// when
		suggestion, err := namer.Suggest("fix typo in docs for the installer")

		// then
		require.NoError(t, err)
		assert.Equal(t, "docs/fix-in", suggestion.String())
	})
}
