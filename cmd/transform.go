package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	"github.com/PolarWolf314/scytale/internal/configs"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/PolarWolf314/scytale/internal/utils"
	"github.com/PolarWolf314/scytale/internal/workflows"
	"github.com/spf13/cobra"
)

// transformFlags are the flags of the encrypt and decrypt commands.
type transformFlags struct {
	cipherFlags
	files  []string
	dryRun bool
}

func (f *transformFlags) bind(cmd *cobra.Command) {
	f.cipherFlags.bind(cmd.Flags())
	cmd.Flags().StringSliceVarP(&f.files, "files", "f", nil, "files or glob patterns to process instead of text")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "preview which files would be written without writing them")
}

func (f *transformFlags) reset() {
	f.cipherFlags.reset()
	f.files = nil
	f.dryRun = false
}

func runTransform(cmd *cobra.Command, args []string, op workflows.Operation, flags *transformFlags) error {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to load presets: %v", err)
	}
	name, args, err := cipherOperand(args, cfg)
	if err != nil {
		hintFor(cmd, "", err)
		return err
	}
	Logger.Infof("Starting %s with %s", op, name)

	settings, err := flags.settings(cmd, name, cfg)
	if err != nil {
		hintFor(cmd, name, err)
		return err
	}

	if len(flags.files) > 0 {
		return runTransformFiles(cmd, name, op, settings, flags)
	}

	text, err := readText(cmd, args)
	if err != nil {
		hintFor(cmd, name, err)
		return err
	}

	result, err := workflows.Transform(cmd.Context(), workflows.TransformOptions{
		Cipher:    name,
		Operation: op,
		Settings:  settings,
		Text:      text,
		Logger:    Logger,
	})
	if err != nil {
		hintFor(cmd, name, err)
		return err
	}
	Logger.Debugf("%s traits: %+v", result.Cipher, result.Traits)

	fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	return nil
}

func runTransformFiles(cmd *cobra.Command, name string, op workflows.Operation, settings ciphers.Settings, flags *transformFlags) error {
	verb := "Encrypting"
	done := "Encrypted"
	if op == workflows.Decrypt {
		verb = "Decrypting"
		done = "Decrypted"
	}

	spinner, cleanup := startSpinner(verb+" files...", cmd.OutOrStdout())
	defer cleanup()

	baseDir, err := filepath.Abs(".")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to resolve working directory: %v", err)
	}

	result, err := workflows.TransformFiles(cmd.Context(), workflows.FilesOptions{
		Cipher:    name,
		Operation: op,
		Settings:  settings,
		Patterns:  flags.files,
		BaseDir:   baseDir,
		DryRun:    flags.dryRun,
		Logger:    Logger,
	})
	if err != nil {
		hintFor(cmd, name, err)
		return err
	}

	if result.DryRun {
		targets := make([]string, len(result.Files))
		for i, f := range result.Files {
			targets[i] = relTo(baseDir, f.Target)
		}
		spinner.FinalMSG = ui.Caution(fmt.Sprintf("Dry run: would write %d file(s) with %s:", len(targets), ui.Highlight.Sprint(result.Cipher))) +
			utils.FormatPaths(targets)
		return nil
	}

	var b strings.Builder
	b.WriteString(ui.Done(fmt.Sprintf("%s %d file(s) with %s", done, len(result.Files), ui.Highlight.Sprint(result.Cipher))))
	for _, f := range result.Files {
		b.WriteString("\n  " + ui.Path.Sprint(relTo(baseDir, f.Source)) + " → " + ui.Path.Sprint(relTo(baseDir, f.Target)))
	}
	spinner.FinalMSG = b.String()
	return nil
}

func relTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}
