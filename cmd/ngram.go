package cmd

import (
	"fmt"

	"github.com/PolarWolf314/scytale/internal/configs"
	"github.com/PolarWolf314/scytale/internal/ngram"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/PolarWolf314/scytale/internal/workflows"
	"github.com/spf13/cobra"
)

const defaultNgramLength = 2

var (
	ngramLength  int
	ngramTop     int
	ngramMapping string

	// NgramCmd groups the n-gram analysis commands.
	NgramCmd = &cobra.Command{
		Use:   "ngram",
		Short: "Extract, count and replace n-grams",
		Long: `Works with n-grams: runs of n consecutive characters, taken with a
stride of one. Every character counts, including spaces and punctuation.

The length defaults to defaults.ngram_length in config.toml, or 2.`,
	}
)

func init() {
	ngramExtractCmd.Flags().IntVarP(&ngramLength, "length", "n", defaultNgramLength, "n-gram length")
	ngramFrequencyCmd.Flags().IntVarP(&ngramLength, "length", "n", defaultNgramLength, "n-gram length")
	ngramFrequencyCmd.Flags().IntVar(&ngramTop, "top", 0, "show only the N most frequent n-grams (0 shows all)")
	ngramReplaceCmd.Flags().StringVarP(&ngramMapping, "map", "m", "", `replacements as "from=to,from=to", applied in order`)
	_ = ngramReplaceCmd.MarkFlagRequired("map")

	NgramCmd.AddCommand(ngramExtractCmd)
	NgramCmd.AddCommand(ngramFrequencyCmd)
	NgramCmd.AddCommand(ngramReplaceCmd)
}

// resetNgramState resets the ngram commands' flag state for testing.
func resetNgramState() {
	ngramLength = defaultNgramLength
	ngramTop = 0
	ngramMapping = ""
	resetCobraFlagState(ngramExtractCmd)
	resetCobraFlagState(ngramFrequencyCmd)
	resetCobraFlagState(ngramReplaceCmd)
}

// resolveNgramLength prefers --length, then the configured default.
func resolveNgramLength(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("length") {
		return ngramLength, nil
	}
	cfg, err := configs.LoadConfig()
	if err != nil {
		return 0, err
	}
	if cfg.Defaults.NgramLength > 0 {
		return cfg.Defaults.NgramLength, nil
	}
	return ngramLength, nil
}

func runAnalyze(cmd *cobra.Command, args []string, opts workflows.AnalyzeOptions) (*workflows.AnalyzeResult, error) {
	text, err := readText(cmd, args)
	if err != nil {
		hintFor(cmd, "ngram", err)
		return nil, err
	}
	opts.Text = text

	if opts.Mode != workflows.Replace {
		n, err := resolveNgramLength(cmd)
		if err != nil {
			return nil, err
		}
		opts.N = n
	}
	Logger.Debugf("Running ngram %s with n=%d over %d bytes", opts.Mode, opts.N, len(text))

	return workflows.Analyze(cmd.Context(), opts)
}

var ngramExtractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Print every n-gram of the text in order, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runAnalyze(cmd, args, workflows.AnalyzeOptions{Mode: workflows.Extract})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, g := range result.Grams {
			fmt.Fprintln(out, g)
		}
		return nil
	},
}

var ngramFrequencyCmd = &cobra.Command{
	Use:   "frequency [text...]",
	Short: "Count how often each n-gram occurs",
	Example: `  scytale ngram frequency -n 3 --top 5 < ciphertext.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runAnalyze(cmd, args, workflows.AnalyzeOptions{Mode: workflows.Frequency})
		if err != nil {
			return err
		}
		counts := result.Counts
		if ngramTop > 0 && ngramTop < len(counts) {
			counts = counts[:ngramTop]
		}
		out := cmd.OutOrStdout()
		for _, c := range counts {
			fmt.Fprintf(out, "%q\t%d\n", c.Gram, c.Count)
		}
		return nil
	},
}

var ngramReplaceCmd = &cobra.Command{
	Use:     "replace [text...]",
	Short:   "Rewrite n-grams according to a mapping",
	Example: `  echo "the theme" | scytale ngram replace --map "th=XX,he=YY"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mapping, err := ngram.ParseMapping(ngramMapping)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Hint("Use "+ui.Flag.Sprint(`--map "from=to,from=to"`)+" with a non-empty source for every pair"))
			return err
		}
		result, err := runAnalyze(cmd, args, workflows.AnalyzeOptions{Mode: workflows.Replace, Mapping: mapping})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Output)
		return nil
	},
}
