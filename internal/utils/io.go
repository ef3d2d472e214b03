package utils

import (
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// ReadInput reads all text from r. An interactive terminal is never read,
// since nothing was piped in; that case, like empty input, returns
// ErrNoInput. A single trailing newline is dropped so `echo text | scytale`
// round-trips cleanly.
func ReadInput(r io.Reader) (string, error) {
	if r == nil || IsTerminal(r) {
		return "", kerrors.ErrNoInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return "", kerrors.ErrNoInput
	}
	return text, nil
}
