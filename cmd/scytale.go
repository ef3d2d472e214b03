package cmd

import (
	logger "github.com/PolarWolf314/scytale/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// BindGlobalFlags adds --verbose and --debug to root and builds Logger
// before any subcommand runs. Log lines go to the command's error stream so
// they never mix with cipher output.
func BindGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
			Out:     cmd.ErrOrStderr(),
			Err:     cmd.ErrOrStderr(),
		}
		Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
	}
}

// AddCommands attaches every scytale subcommand to root.
func AddCommands(root *cobra.Command) {
	root.AddCommand(EncryptCmd)
	root.AddCommand(DecryptCmd)
	root.AddCommand(CiphersCmd)
	root.AddCommand(VisualizeCmd)
	root.AddCommand(NgramCmd)
	root.AddCommand(ConfigCmd)
	root.AddCommand(HistoryCmd)
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetEncryptState()
	resetDecryptState()
	resetVisualizeState()
	resetNgramState()
	resetConfigState()
	resetHistoryState()
}
