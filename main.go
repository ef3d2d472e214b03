package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/scytale/cmd"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scytale",
	Short: "Scytale - classical ciphers and n-gram analysis on the command line.",
	Long: `Scytale encrypts and decrypts text with classical ciphers and helps
analyse ciphertext.

Features:
  - Substitution ciphers: caesar, atbash, affine
  - Polyalphabetic ciphers: vigenere, gronsfeld, beaufort, autokey, autoclave
  - Matrix and transposition ciphers: hill, railfence, route, myszkowski
  - N-gram extraction, frequency counting and replacement

Usage:
  scytale <command> [flags]

Run 'scytale help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("Scytale", "", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Welcome to Scytale! Run 'scytale --help' to see available commands.")
	},
}

func init() {
	cmd.BindGlobalFlags(rootCmd)
	cmd.AddCommands(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Failed(err.Error()))
		os.Exit(1)
	}
}
