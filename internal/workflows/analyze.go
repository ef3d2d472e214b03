package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
	"github.com/PolarWolf314/scytale/internal/ngram"
)

// AnalyzeMode selects what Analyze does with its text.
type AnalyzeMode string

const (
	Extract   AnalyzeMode = "extract"
	Frequency AnalyzeMode = "frequency"
	Replace   AnalyzeMode = "replace"
)

// AnalyzeOptions configures the n-gram workflow.
type AnalyzeOptions struct {
	Mode AnalyzeMode
	Text string

	// N is the n-gram length for Extract and Frequency.
	N int

	// Mapping is used by Replace.
	Mapping ngram.Mapping
}

// AnalyzeResult holds the field matching the requested mode.
type AnalyzeResult struct {
	Mode AnalyzeMode

	// Grams is set by Extract, in text order.
	Grams []string

	// Counts is set by Frequency, most frequent first.
	Counts []ngram.Count

	// Output is set by Replace.
	Output string
}

// Analyze runs one n-gram operation over opts.Text.
//
// Returns ErrInvalidNgramLength if N < 1 for Extract or Frequency.
// Returns ErrEmptyPattern if a Replace mapping has an empty source.
func Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &AnalyzeResult{Mode: opts.Mode}
	switch opts.Mode {
	case Extract:
		grams, err := ngram.Extract(opts.Text, opts.N)
		if err != nil {
			return nil, err
		}
		result.Grams = grams
	case Frequency:
		freq, err := ngram.Frequency(opts.Text, opts.N)
		if err != nil {
			return nil, err
		}
		result.Counts = ngram.Ranked(freq)
	case Replace:
		out, err := ngram.Replace(opts.Text, opts.Mapping)
		if err != nil {
			return nil, err
		}
		result.Output = out
	default:
		return nil, fmt.Errorf("%w: unknown n-gram mode %q", kerrors.ErrUnsupportedOperation, string(opts.Mode))
	}
	return result, nil
}
