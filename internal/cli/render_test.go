package cli

import (
	"bytes"
	"testing"

	"github.com/Veraticus/spice-explain/internal/pattern"
	"github.com/Veraticus/spice-explain/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPatternDetails(t *testing.T) {
	out := RenderPatternDetails(pattern.Describe(`anyof("A", "B", "C", "D")`))

	assert.Contains(t, out, "Kind:")
	assert.Contains(t, out, "anyof")
	assert.Contains(t, out, "A, B, C, D")
	assert.Contains(t, out, "Not shown:")
}

func TestRenderPatternDetails_NoTerms(t *testing.T) {
	out := RenderPatternDetails(pattern.Describe(""))

	assert.Contains(t, out, "empty")
	assert.NotContains(t, out, "Terms:")
	assert.NotContains(t, out, "Not shown:")
}

func TestRenderFilterDetails(t *testing.T) {
	t.Run("clauses", func(t *testing.T) {
		out := RenderFilterDetails(view.Describe(`tag("business") && cv <= 0.3`))

		assert.Contains(t, out, "tag → business")
		assert.Contains(t, out, "cv → 0.3")
	})

	t.Run("fallback", func(t *testing.T) {
		out := RenderFilterDetails(view.Describe(`amount > 10`))
		assert.Contains(t, out, "No recognized predicates")
	})
}

func TestRenderExplanation(t *testing.T) {
	out := RenderExplanation(`^AMZN.*$`, `Starts with "AMZN ..." at end`)

	assert.Contains(t, out, `^AMZN.*$`)
	assert.Contains(t, out, `→ Starts with "AMZN ..." at end`)
}

func TestNewProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 2, "Importing rules...")

	require.NoError(t, bar.Add(1))
	require.NoError(t, bar.Add(1))
	assert.True(t, bar.IsFinished())
	assert.Contains(t, buf.String(), "Importing rules...")
}
