package ciphers

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// letterKey validates a key made only of letters and returns its ranks.
// Case is ignored.
func letterKey(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key must not be empty", kerrors.ErrInvalidKey)
	}
	shifts := make([]int, 0, len(key))
	for _, c := range key {
		r, ok := rank(c)
		if !ok {
			return nil, fmt.Errorf("%w: key must contain only letters A-Z, found %q in %q",
				kerrors.ErrInvalidKey, c, key)
		}
		shifts = append(shifts, r)
	}
	return shifts, nil
}

// strippedLetterKey upper-cases key and drops everything that is not a
// letter. At least one letter must remain.
func strippedLetterKey(key string) ([]int, error) {
	var b strings.Builder
	for _, c := range strings.ToUpper(key) {
		if c >= 'A' && c <= 'Z' {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("%w: key must contain at least one letter, got %q", kerrors.ErrInvalidKey, key)
	}
	return letterKey(b.String())
}

// digitKey validates a key made only of decimal digits and returns them.
func digitKey(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key must not be empty", kerrors.ErrInvalidKey)
	}
	shifts := make([]int, 0, len(key))
	for _, c := range key {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: key must contain only digits 0-9, found %q in %q",
				kerrors.ErrInvalidKey, c, key)
		}
		shifts = append(shifts, int(c-'0'))
	}
	return shifts, nil
}

// keyString renders shifts as upper-case letters.
func keyString(shifts []int) string {
	out := make([]rune, len(shifts))
	for i, s := range shifts {
		out[i] = rune('A' + s)
	}
	return string(out)
}
