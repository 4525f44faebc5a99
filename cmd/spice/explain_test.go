package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes cmd with args and returns what it wrote to stdout.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExplainPatternCmd(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{name: "contains", pattern: `contains("NETFLIX")`, expected: "Description contains \"NETFLIX\"\n"},
		{name: "anyof", pattern: `anyof("A", "B", "C", "D")`, expected: "Description contains any of: A, B, C...\n"},
		{name: "anchored regex", pattern: `^AMZN.*$`, expected: "Starts with \"AMZN ...\" at end\n"},
		{name: "empty", pattern: "", expected: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, explainCmd(), "pattern", tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestExplainPatternCmd_Verbose(t *testing.T) {
	out, err := runCommand(t, explainCmd(), "pattern", "--verbose", `A|B|C|D`)
	require.NoError(t, err)

	assert.Contains(t, out, "Matches: A OR B OR C (+ 1 more)")
	assert.Contains(t, out, "alternation")
	assert.Contains(t, out, "A, B, C, D")
}

func TestExplainFilterCmd(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		expected string
	}{
		{
			name:     "composed",
			filter:   `tag("business") && months >= 6 && total >= 1200 && cv <= 0.3`,
			expected: "Has tag \"business\" AND Active 6+ months AND Total ≥ $1200 AND Coefficient of variation ≤ 0.3\n",
		},
		{
			name:     "fallback",
			filter:   `amount > 10 && source == "Chase"`,
			expected: "amount > 10  and  source = \"Chase\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, explainCmd(), "filter", tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestExplainFilterCmd_Verbose(t *testing.T) {
	out, err := runCommand(t, explainCmd(), "filter", "-v", `category == "Food" && tag("weekly")`)
	require.NoError(t, err)

	assert.Contains(t, out, `Category is "Food" AND Has tag "weekly"`)
	assert.Contains(t, out, "category → Food")
	assert.Contains(t, out, "tag → weekly")
}

func TestExplainCmd_RequiresArgument(t *testing.T) {
	_, err := runCommand(t, explainCmd(), "pattern")
	assert.Error(t, err)
}

func TestExplainFileCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
patterns:
  - name: Streaming
    pattern: contains("NETFLIX")
    category: Subscriptions
    subcategory: Video
views:
  - name: business
    filter: tag("business") && total >= 1200
`), 0600))

	out, err := runCommand(t, explainCmd(), "file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Patterns")
	assert.Contains(t, out, "Streaming")
	assert.Contains(t, out, "Subscriptions > Video")
	assert.Contains(t, out, `Description contains "NETFLIX"`)
	assert.Contains(t, out, "Views")
	assert.Contains(t, out, `Has tag "business" AND Total ≥ $1200`)
}

func TestExplainFileCmd_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns: []\n"), 0600))

	out, err := runCommand(t, explainCmd(), "file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No patterns or views")
}

func TestExplainFileCmd_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  - pattern: foo\n"), 0600))

	_, err := runCommand(t, explainCmd(), "file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		maxLen   int
	}{
		{input: "short", maxLen: 10, expected: "short"},
		{input: "exactly10!", maxLen: 10, expected: "exactly10!"},
		{input: "this is too long", maxLen: 10, expected: "this is..."},
		{input: "≥≥≥≥≥≥", maxLen: 5, expected: "≥≥..."},
		{input: "abcdef", maxLen: 2, expected: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateString(tt.input, tt.maxLen))
		})
	}
}
