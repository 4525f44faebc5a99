package main

import (
	"testing"

	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsCommands(t *testing.T) {
	useTestDatabase(t)

	out, err := runCommand(t, viewsCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No views found")

	out, err = runCommand(t, viewsCmd(), "create",
		"--name", "recurring",
		"--filter", `category == "Bills" && months >= 12 && cv <= 0.1`,
		"--description", "Stable monthly bills")
	require.NoError(t, err)
	assert.Contains(t, out, `Created view "recurring"`)
	assert.Contains(t, out, `Category is "Bills" AND Active 12+ months AND Coefficient of variation ≤ 0.1`)

	out, err = runCommand(t, viewsCmd(), "show", "recurring")
	require.NoError(t, err)
	assert.Contains(t, out, "Stable monthly bills")
	assert.Contains(t, out, "months → 12")

	_, err = runCommand(t, viewsCmd(), "create", "--name", "recurring", "--filter", "cv < 1")
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	_, err = runCommand(t, viewsCmd(), "delete", "recurring")
	require.NoError(t, err)

	_, err = runCommand(t, viewsCmd(), "delete", "recurring")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "spice dev\n", out)
}
