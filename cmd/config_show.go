package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/PolarWolf314/scytale/internal/configs"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
	resetCobraFlagState(configShowCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the presets in effect",
	Long: `Displays the presets file, after checking that every preset builds a
valid cipher.

Examples:
  scytale config show
  scytale config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		out := cmd.OutOrStdout()

		configPath := configs.UserScytaleSettings.ConfigPath()
		Logger.Debugf("Loading presets from %s", configPath)
		cfg, err := configs.LoadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load presets: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Caution("Invalid preset in "+ui.Path.Sprint(configPath)))
			return err
		}

		if configShowJSON {
			output, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal presets to JSON: %v", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		if !configs.ConfigExists() {
			fmt.Fprintln(out, ui.Caution("No presets file found; built-in defaults are in use."))
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Hint("Run "+ui.Code.Sprint("scytale config init")+" to create one"))
			return nil
		}

		printConfig(out, configPath, cfg)
		return nil
	},
}

func printConfig(out io.Writer, path string, cfg *configs.Config) {
	fmt.Fprintln(out, ui.Heading.Sprint("Presets")+" "+ui.Muted.Sprint(path))
	fmt.Fprintln(out)
	if cfg.Defaults.Cipher != "" {
		fmt.Fprintf(out, "  %-14s %s\n", "Cipher:", ui.Highlight.Sprint(cfg.Defaults.Cipher))
	}
	if cfg.Defaults.NgramLength > 0 {
		fmt.Fprintf(out, "  %-14s %d\n", "N-gram length:", cfg.Defaults.NgramLength)
	}

	names := make([]string, 0, len(cfg.Ciphers))
	for name := range cfg.Ciphers {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return
	}
	fmt.Fprintln(out)
	for _, name := range names {
		settings := cfg.Ciphers[name].String()
		if settings == "" {
			settings = ui.Muted.Sprint("no parameters")
		}
		fmt.Fprintf(out, "  %-12s %s\n", name, settings)
	}
}
