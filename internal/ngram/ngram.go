// Package ngram extracts, counts and rewrites contiguous character
// sequences. Positions are counted in runes, and every character, letter
// or not, is part of the sequence.
package ngram

import (
	"fmt"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// Extract returns every length-n window of text, stride 1, in order. Text
// shorter than n yields an empty slice.
func Extract(text string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %w: n must be at least 1, got %d", kerrors.ErrInvalidKey, kerrors.ErrInvalidNgramLength, n)
	}
	runes := []rune(text)
	if len(runes) < n {
		return []string{}, nil
	}
	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams, nil
}

// Frequency counts how often each n-gram of text occurs.
func Frequency(text string, n int) (map[string]int, error) {
	grams, err := Extract(text, n)
	if err != nil {
		return nil, err
	}
	freq := make(map[string]int, len(grams))
	for _, g := range grams {
		freq[g]++
	}
	return freq, nil
}

// Count is one row of a frequency table.
type Count struct {
	Gram  string
	Count int
}

// Ranked orders a frequency table by count, highest first, breaking ties by
// n-gram.
func Ranked(freq map[string]int) []Count {
	out := make([]Count, 0, len(freq))
	for g, n := range freq {
		out = append(out, Count{Gram: g, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Gram < out[j].Gram
	})
	return out
}

// Replacement rewrites every literal occurrence of From with To.
type Replacement struct {
	From string
	To   string
}

// Mapping is an ordered list of replacements, applied first to last.
type Mapping []Replacement

// ParseMapping reads "from=to" pairs separated by commas, e.g. "th=XX,he=YY".
// Whitespace around pairs is trimmed; "from" must not be empty.
func ParseMapping(s string) (Mapping, error) {
	var m Mapping
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		from, to, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected from=to, got %q", kerrors.ErrInvalidKey, pair)
		}
		m = append(m, Replacement{From: from, To: to})
	}
	return m, m.validate()
}

func (m Mapping) validate() error {
	for i, r := range m {
		if r.From == "" {
			return fmt.Errorf("%w: %w: entry %d has no source n-gram", kerrors.ErrInvalidKey, kerrors.ErrEmptyPattern, i)
		}
	}
	return nil
}

// Replace applies each replacement in order as a global literal
// substitution. Later entries see the output of earlier ones, so
// overlapping mappings depend on their order.
func Replace(text string, m Mapping) (string, error) {
	if err := m.validate(); err != nil {
		return "", err
	}
	for _, r := range m {
		text = strings.ReplaceAll(text, r.From, r.To)
	}
	return text, nil
}
