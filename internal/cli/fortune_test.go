package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyokley/build-demo/internal/config"
)

// writeStubFortune creates an executable shell script standing in for
// the fortune binary.
func writeStubFortune(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fortune")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// runCommand executes the root command with the given args and returns
// captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset persistent flag state mutated by earlier tests in this
	// package; cobra binds the flags to package-level variables.
	jsonOutput = false
	verbose = false

	var out bytes.Buffer
	rootCmd := NewRootCommand()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// TestFortuneCommand_Text verifies the plain-text output path: the stub
// fortune is printed wrapped, one line per row.
func TestFortuneCommand_Text(t *testing.T) {
	t.Setenv(config.EnvFortunePath, "")
	t.Setenv(config.EnvUpstreamBaseURL, "")
	stub := writeStubFortune(t, `echo "A short one"`)

	out, err := runCommand(t, "fortune", "--fortune-path", stub)
	require.NoError(t, err)

	assert.Equal(t, "A short one\n", out)
}

// TestFortuneCommand_WidthFlag verifies that --width forces wrapping.
func TestFortuneCommand_WidthFlag(t *testing.T) {
	t.Setenv(config.EnvFortunePath, "")
	t.Setenv(config.EnvUpstreamBaseURL, "")
	stub := writeStubFortune(t, `echo "alpha beta gamma"`)

	out, err := runCommand(t, "fortune", "--fortune-path", stub, "--width", "5")
	require.NoError(t, err)

	assert.Equal(t, "alpha\nbeta\ngamma\n", out)
}

// TestFortuneCommand_JSON verifies the --json output structure.
func TestFortuneCommand_JSON(t *testing.T) {
	t.Setenv(config.EnvFortunePath, "")
	t.Setenv(config.EnvUpstreamBaseURL, "")
	stub := writeStubFortune(t, `echo "alpha beta"`)

	out, err := runCommand(t, "fortune", "--json", "--fortune-path", stub)
	require.NoError(t, err)

	var result struct {
		Fortune string   `json:"fortune"`
		Lines   []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "alpha beta", result.Fortune)
	assert.Equal(t, []string{"alpha beta"}, result.Lines)
}

// TestFortuneCommand_GeneratorFailure verifies that a failing generator
// propagates an error out of the command.
func TestFortuneCommand_GeneratorFailure(t *testing.T) {
	t.Setenv(config.EnvFortunePath, "")
	t.Setenv(config.EnvUpstreamBaseURL, "")
	stub := writeStubFortune(t, `exit 1`)

	_, err := runCommand(t, "fortune", "--fortune-path", stub)
	require.Error(t, err)
}
