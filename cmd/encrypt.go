package cmd

import (
	"github.com/PolarWolf314/scytale/internal/workflows"
	"github.com/spf13/cobra"
)

var encryptFlags transformFlags

func init() {
	encryptFlags.bind(EncryptCmd)
}

// resetEncryptState resets the encrypt command's flag state for testing.
func resetEncryptState() {
	encryptFlags.reset()
	resetCobraFlagState(EncryptCmd)
}

// EncryptCmd encrypts text or files with a named cipher.
var EncryptCmd = &cobra.Command{
	Use:   "encrypt [cipher] [text...]",
	Short: "Encrypt text or files with a classical cipher",
	Long: `Encrypts text with the named cipher.

The text is taken from the remaining arguments, joined by spaces, or from
stdin when it is piped. Key settings come from the built-in defaults, then
your presets in config.toml, then any flags given here. With no arguments
at all, defaults.cipher from config.toml is used and the text is read from
stdin.

Examples:
  # Caesar with a shift of 3
  scytale encrypt caesar --shift 3 "Hello, World!"

  # Vigenère from stdin
  echo "attack at dawn" | scytale encrypt vigenere --key LEMON

  # Hill with an explicit key matrix
  scytale encrypt hill --matrix 3,3,2,5 help

  # Encrypt every .txt file below the current directory into .scy files
  scytale encrypt railfence --rails 4 --files "**/*.txt"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args, workflows.Encrypt, &encryptFlags)
	},
}
