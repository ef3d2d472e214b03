package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	"github.com/PolarWolf314/scytale/internal/configs"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/PolarWolf314/scytale/internal/utils"
	"github.com/PolarWolf314/scytale/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should be
// deferred to clean up; the cleanup prints spinner.FinalMSG to out.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// readText returns the text operand of a command: the arguments joined by
// spaces, or piped stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return utils.ReadInput(cmd.InOrStdin())
}

// cipherFlags holds the per-call key material shared by every command that
// builds a cipher.
type cipherFlags struct {
	shift   int
	a       int
	b       int
	key     string
	matrix  string
	rails   int
	columns int
	route   string
}

func (f *cipherFlags) bind(fs *pflag.FlagSet) {
	fs.IntVar(&f.shift, "shift", 0, "Caesar shift")
	fs.IntVar(&f.a, "a", 0, "Affine multiplier, coprime with 26")
	fs.IntVar(&f.b, "b", 0, "Affine offset")
	fs.StringVarP(&f.key, "key", "k", "", "keyword, or digits for gronsfeld")
	fs.StringVar(&f.matrix, "matrix", "", `Hill key matrix as "k00,k01,k10,k11"`)
	fs.IntVar(&f.rails, "rails", 0, "number of rail fence rails")
	fs.IntVar(&f.columns, "columns", 0, "number of route grid columns")
	fs.StringVar(&f.route, "route", "", "route traversal: spiral or snake")
}

func (f *cipherFlags) reset() {
	*f = cipherFlags{}
}

// cipherOperand splits args into the cipher name and the remaining text
// arguments. With no arguments the configured default cipher is used.
func cipherOperand(args []string, cfg *configs.Config) (string, []string, error) {
	if len(args) > 0 {
		return args[0], args[1:], nil
	}
	if cfg.Defaults.Cipher != "" {
		Logger.Debugf("No cipher given, using default %s", cfg.Defaults.Cipher)
		return cfg.Defaults.Cipher, nil, nil
	}
	return "", nil, fmt.Errorf("%w: no cipher given and no default cipher configured", kerrors.ErrUnknownCipher)
}

// settings resolves the settings for cipher name: built-in defaults, then
// the user's preset, then every flag set on this invocation.
func (f *cipherFlags) settings(cmd *cobra.Command, name string, cfg *configs.Config) (ciphers.Settings, error) {
	s, err := workflows.ResolveSettings(name, cfg)
	if err != nil {
		return ciphers.Settings{}, err
	}
	Logger.Debugf("Settings for %s before flags: %+v", name, s)

	fs := cmd.Flags()
	if fs.Changed("shift") {
		s.Shift = f.shift
	}
	if fs.Changed("a") {
		s.A = f.a
	}
	if fs.Changed("b") {
		s.B = f.b
	}
	if fs.Changed("key") {
		s.Key = f.key
	}
	if fs.Changed("matrix") {
		m, err := parseMatrix(f.matrix)
		if err != nil {
			return ciphers.Settings{}, err
		}
		s.KeyMatrix = m
	}
	if fs.Changed("rails") {
		s.Rails = f.rails
	}
	if fs.Changed("columns") {
		s.Columns = f.columns
	}
	if fs.Changed("route") {
		rt, err := ciphers.ParseRouteType(f.route)
		if err != nil {
			return ciphers.Settings{}, err
		}
		s.RouteType = rt
	}
	return s, nil
}

// parseMatrix reads four comma-separated integers, row-major, into a 2x2
// matrix.
func parseMatrix(s string) ([][]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: --matrix needs four comma-separated integers, got %q", kerrors.ErrInvalidKey, s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: --matrix entry %q is not an integer", kerrors.ErrInvalidKey, p)
		}
		vals[i] = v
	}
	return [][]int{{vals[0], vals[1]}, {vals[2], vals[3]}}, nil
}

// hintFor prints a suggestion for errors the user can fix from the command line.
func hintFor(cmd *cobra.Command, name string, err error) {
	w := cmd.ErrOrStderr()
	switch {
	case errors.Is(err, kerrors.ErrUnknownCipher):
		fmt.Fprintln(w, ui.Hint("Run "+ui.Code.Sprint("scytale ciphers")+" to list available ciphers"))
	case errors.Is(err, kerrors.ErrInvalidKey), errors.Is(err, kerrors.ErrUnknownRoute):
		fmt.Fprintln(w, ui.Hint("Run "+ui.Code.Sprint("scytale ciphers "+name)+" to see its parameters"))
	case errors.Is(err, kerrors.ErrNoInput):
		fmt.Fprintln(w, ui.Hint("Pass the text as arguments or pipe it on stdin"))
	}
}

// resetCobraFlagState marks every flag of cmd as unset to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}
