//go:build unit

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("should suggest a branch through --action", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, stderr bytes.Buffer

		// when
		code := run([]string{"--action", "suggest-branch", "--context", "fixing login bug"}, &stdout, &stderr)

		// then
		assert.Equal(t, 0, code)
		assert.Equal(t, "Suggested Branch Name: fix/login-bug\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("should suggest a branch through the subcommand with JSON output", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, stderr bytes.Buffer

		// when
		code := run([]string{"suggest-branch", "--context", "add search feature", "--format", "json"}, &stdout, &stderr)

		// then
		require.Equal(t, 0, code, stderr.String())
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "feature/add-search", decoded["branchName"])
	})

	t.Run("should pass the built-in self-test", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, stderr bytes.Buffer

		// when
		code := run([]string{"--action", "test"}, &stdout, &stderr)

		// then
		assert.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "All checks passed.")
	})

	t.Run("should exit with a usage error for an unknown action", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, stderr bytes.Buffer

		// when
		code := run([]string{"--action", "deploy"}, &stdout, &stderr)

		// then
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Error:")
		assert.Contains(t, stderr.String(), "suggest-branch")
	})

	t.Run("should exit with a usage error for an unknown flag", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, stderr bytes.Buffer

		// when
		code := run([]string{"--bogus"}, &stdout, &stderr)

		// then
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
	})

	t.Run("should exit with the repository code outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, stderr bytes.Buffer

		// when
		code := run([]string{"--action", "analyze-history", "--repo", t.TempDir()}, &stdout, &stderr)

		// then
		assert.Equal(t, 2, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "not a git repository")
	})
}
