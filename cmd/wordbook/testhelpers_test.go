package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kmizuta/wordbook/internal/testutil"
)

// setupCommandTest points the commands at a throwaway config file and
// disables colored output. Returns the directory holding the dictionary
// slot and the export directory.
func setupCommandTest(t *testing.T) string {
	t.Helper()

	previousConfig := configFile
	previousNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		configFile = previousConfig
		color.NoColor = previousNoColor
	})

	tmpDir := t.TempDir()
	configFile = testutil.SetupTestConfig(t, tmpDir)
	return tmpDir
}

// executeCommand runs a command with the given arguments and returns what it
// wrote to stdout.
func executeCommand(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out strings.Builder
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

// mustExecute runs a command and fails the test on error.
func mustExecute(t *testing.T, command *cobra.Command, args ...string) string {
	t.Helper()

	output, err := executeCommand(t, command, args...)
	require.NoError(t, err)
	return output
}
