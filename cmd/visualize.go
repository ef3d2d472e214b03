package cmd

import (
	"fmt"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	"github.com/PolarWolf314/scytale/internal/configs"
	"github.com/PolarWolf314/scytale/internal/visualize"
	"github.com/spf13/cobra"
)

var visualizeFlags cipherFlags

func init() {
	visualizeFlags.bind(VisualizeCmd.Flags())
}

// resetVisualizeState resets the visualize command's flag state for testing.
func resetVisualizeState() {
	visualizeFlags.reset()
	resetCobraFlagState(VisualizeCmd)
}

// VisualizeCmd draws the layout a cipher works with.
var VisualizeCmd = &cobra.Command{
	Use:   "visualize [cipher] [text...]",
	Short: "Show how a cipher lays out its alphabet or text",
	Long: `Renders the working layout of a cipher.

Monoalphabetic ciphers (caesar, atbash, affine) show their substitution
table. Transposition ciphers (railfence, route, myszkowski) draw the grid
the text is written into, with '.' in unused cells; they need text, given
as arguments or on stdin.

Examples:
  scytale visualize affine --a 7 --b 3
  scytale visualize railfence --rails 3 WEAREDISCOVERED
  scytale visualize route --columns 4 --route snake "meet me at noon"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configs.LoadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load presets: %v", err)
		}
		name, args, err := cipherOperand(args, cfg)
		if err != nil {
			hintFor(cmd, "", err)
			return err
		}
		Logger.Infof("Starting visualize for %s", name)

		settings, err := visualizeFlags.settings(cmd, name, cfg)
		if err != nil {
			hintFor(cmd, name, err)
			return err
		}
		c, err := ciphers.New(name, settings)
		if err != nil {
			hintFor(cmd, name, err)
			return err
		}

		var drawing string
		switch c := c.(type) {
		case *ciphers.RailFence, *ciphers.Route, *ciphers.Myszkowski:
			text, err := readText(cmd, args)
			if err != nil {
				hintFor(cmd, name, err)
				return err
			}
			drawing = drawTransposition(c, text)
		default:
			drawing, err = visualize.SubstitutionTable(c)
			if err != nil {
				return err
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), drawing)
		return nil
	},
}

func drawTransposition(c ciphers.Cipher, text string) string {
	switch c := c.(type) {
	case *ciphers.RailFence:
		return visualize.RailFence(c, text)
	case *ciphers.Route:
		return visualize.Route(c, text)
	case *ciphers.Myszkowski:
		return visualize.Myszkowski(c, text)
	}
	return ""
}
