package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Scytale presets",
	Long: `Provides commands for managing the presets file.

The presets file lives at $XDG_CONFIG_HOME/scytale/config.toml and holds the
default cipher, the default n-gram length and per-cipher settings used when
no flag overrides them.

Examples:
  # Write the built-in defaults to the presets file
  scytale config init

  # Show the presets in effect
  scytale config show`,
}

// resetConfigState resets all config command global variables to their default values for testing.
func resetConfigState() {
	resetConfigInitState()
	resetConfigShowState()
}
