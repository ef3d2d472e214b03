package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/spf13/cobra"
)

// CiphersCmd lists the cipher catalog or describes one cipher.
var CiphersCmd = &cobra.Command{
	Use:   "ciphers [cipher]",
	Short: "List available ciphers or describe one",
	Long: `Lists every registered cipher with a one-line description.

With a cipher name, shows its parameters, built-in defaults and traits.

Examples:
  scytale ciphers
  scytale ciphers affine`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			printCatalog(out)
			return nil
		}

		info, err := ciphers.Lookup(args[0])
		if err != nil {
			hintFor(cmd, args[0], err)
			return err
		}
		printCipherInfo(out, info)
		return nil
	},
}

func printCatalog(out io.Writer) {
	fmt.Fprintln(out, ui.Heading.Sprint("Available ciphers:"))
	for _, info := range ciphers.All() {
		fmt.Fprintf(out, "  %-12s %s\n", info.Name, info.Description)
	}
	fmt.Fprintf(out, "  %-12s %s\n", "ngram", "N-gram extraction, frequency counting and replacement (see scytale ngram).")
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Hint("Run "+ui.Code.Sprint("scytale ciphers <cipher>")+" for parameters and defaults"))
}

func printCipherInfo(out io.Writer, info ciphers.Info) {
	fmt.Fprintln(out, ui.Heading.Sprint(info.Title)+" "+ui.Muted.Sprint(info.Name))
	fmt.Fprintln(out, info.Description)

	if len(info.Parameters) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Heading.Sprint("Parameters:"))
		for _, p := range info.Parameters {
			fmt.Fprintf(out, "  %-12s %s\n", p.Name, p.Description)
		}
	}

	if d := describeSettings(info.Defaults); d != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Heading.Sprint("Defaults:")+" "+d)
	}

	if traits := describeTraits(info.Traits()); len(traits) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Heading.Sprint("Traits:")+" "+strings.Join(traits, ", "))
	}
}

// describeSettings renders the non-zero fields of s as key=value pairs.
func describeSettings(s ciphers.Settings) string {
	var parts []string
	if s.Shift != 0 {
		parts = append(parts, fmt.Sprintf("shift=%d", s.Shift))
	}
	if s.A != 0 || s.B != 0 {
		parts = append(parts, fmt.Sprintf("a=%d", s.A), fmt.Sprintf("b=%d", s.B))
	}
	if s.Key != "" {
		parts = append(parts, "key="+s.Key)
	}
	if len(s.KeyMatrix) > 0 {
		parts = append(parts, fmt.Sprintf("key_matrix=%v", s.KeyMatrix))
	}
	if s.Rails != 0 {
		parts = append(parts, fmt.Sprintf("rails=%d", s.Rails))
	}
	if s.Columns != 0 {
		parts = append(parts, fmt.Sprintf("columns=%d", s.Columns))
	}
	if s.RouteType != "" {
		parts = append(parts, "route_type="+string(s.RouteType))
	}
	return strings.Join(parts, " ")
}

func describeTraits(t ciphers.Traits) []string {
	var traits []string
	if t.Monoalphabetic {
		traits = append(traits, "monoalphabetic")
	}
	if t.SelfInverse {
		traits = append(traits, "self-inverse")
	}
	if t.SequentialDecrypt {
		traits = append(traits, "sequential decrypt")
	}
	if t.PreservesFormatting {
		traits = append(traits, "preserves case and punctuation")
	}
	return traits
}
