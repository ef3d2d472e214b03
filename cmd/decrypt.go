package cmd

import (
	"github.com/PolarWolf314/scytale/internal/workflows"
	"github.com/spf13/cobra"
)

var decryptFlags transformFlags

func init() {
	decryptFlags.bind(DecryptCmd)
}

// resetDecryptState resets the decrypt command's flag state for testing.
func resetDecryptState() {
	decryptFlags.reset()
	resetCobraFlagState(DecryptCmd)
}

// DecryptCmd reverses EncryptCmd with the same cipher settings.
var DecryptCmd = &cobra.Command{
	Use:   "decrypt [cipher] [text...]",
	Short: "Decrypt text or files with a classical cipher",
	Long: `Decrypts text with the named cipher, using the same settings that
encrypted it. Self-inverse ciphers such as atbash give the same result for
either command.

Hill and route ciphertext decrypts to the padded plaintext; the trailing
'x' fill is not removed.

Examples:
  scytale decrypt caesar --shift 3 "Khoor, Zruog!"

  # Restore every .scy file below the current directory
  scytale decrypt railfence --rails 4 --files "**/*.scy"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args, workflows.Decrypt, &decryptFlags)
	},
}
