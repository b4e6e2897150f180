package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestReset_Force(t *testing.T) {
	setupCLITest(t)
	mustExecute(t, "activity", "add", "--driving", "40")
	mustExecute(t, "profile", "set", "--email", "me@example.com")

	out := mustExecute(t, "reset", "--force")

	assert.Contains(t, out, "All data cleared")
	assert.Empty(t, listActivities(t))
	assert.Contains(t, mustExecute(t, "profile", "show"), "No profile set")
}

func TestReset_RequiresForceWithoutTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}
	setupCLITest(t)
	mustExecute(t, "activity", "add", "--driving", "40")

	_, _, err := execute(t, "reset")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.Len(t, listActivities(t), 1)
}

func TestTUI_RequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	setupCLITest(t)

	_, _, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}
