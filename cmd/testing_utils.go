package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/PolarWolf314/scytale/internal/configs"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points the presets file at a temporary directory and
// resets command state once the test finishes.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	originalSettings := configs.UserScytaleSettings
	configDir := t.TempDir()
	configs.UserScytaleSettings = &configs.UserSettings{ConfigDir: configDir}

	ResetGlobalState()
	t.Cleanup(func() {
		configs.UserScytaleSettings = originalSettings
		ResetGlobalState()
	})
	return configDir
}

// createTestCLI creates a complete CLI instance for testing. stdin may be
// nil, in which case commands that need input see none.
func createTestCLI(args []string, stdin io.Reader) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	rootCmd := &cobra.Command{
		Use:           "scytale",
		Short:         "Scytale - classical ciphers and n-gram analysis on the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	BindGlobalFlags(rootCmd)
	AddCommands(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)

	return rootCmd, &stdout, &stderr
}

// runCLI executes args and returns trimmed stdout, stderr and the error.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	rootCmd, stdout, stderr := createTestCLI(args, stdin)
	err := rootCmd.Execute()
	ResetGlobalState()
	return strings.TrimRight(stdout.String(), "\n"), stderr.String(), err
}
