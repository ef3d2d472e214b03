package cmd

import (
	"github.com/PolarWolf314/scytale/internal/configs"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing presets file")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
	resetCobraFlagState(configInitCmd)
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in defaults to the presets file",
	Long: `Creates config.toml with every cipher's built-in settings, ready to edit.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		spinner, cleanup := startSpinner("Writing presets...", cmd.OutOrStdout())
		defer cleanup()

		configPath := configs.UserScytaleSettings.ConfigPath()
		Logger.Debugf("Presets path: %s", configPath)

		if configs.ConfigExists() && !configInitForce {
			spinner.FinalMSG = ui.Caution("Presets already exist at "+ui.Path.Sprint(configPath)) + "\n" +
				ui.Hint("Run "+ui.Code.Sprint("scytale config init --force")+" to overwrite them")
			return nil
		}

		if err := configs.SaveConfig(configs.DefaultConfig()); err != nil {
			return Logger.ErrorfAndReturn("Failed to write presets: %v", err)
		}

		spinner.FinalMSG = ui.Done("Presets written to " + ui.Path.Sprint(configPath))
		return nil
	},
}
