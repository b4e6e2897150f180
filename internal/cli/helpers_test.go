package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
)

// setupCLITest isolates FOOTPRINT_HOME and the environment overrides, and
// resets global state after the test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FOOTPRINT_HOME", home)
	t.Setenv("FOOTPRINT_LOG_LEVEL", "error")
	t.Setenv("FOOTPRINT_DATA_DIR", "")
	t.Setenv("FOOTPRINT_LOG_FORMAT", "")
	t.Setenv("FOOTPRINT_OUTPUT_FORMAT", "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustExecute runs args and fails the test on error.
func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, err := execute(t, args...)
	require.NoError(t, err, "stderr: %s", errOut)
	return out
}

// listActivities returns the stored activities via `activity list --output json`.
func listActivities(t *testing.T, extra ...string) []greenops.Activity {
	t.Helper()
	out := mustExecute(t, append([]string{"activity", "list", "--output", "json"}, extra...)...)
	var doc engine.ActivitiesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc.Activities
}
