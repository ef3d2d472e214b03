package ciphers

import (
	"fmt"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// Affine maps rank x to (a*x + b) mod 26. a must be coprime with 26 so the
// map can be inverted.
type Affine struct {
	a, b int
	aInv int
}

func NewAffine(a, b int) (*Affine, error) {
	if !IsCoprime(a, alphabetSize) {
		return nil, fmt.Errorf("%w: 'a' must be coprime with 26, got %d (valid values: %v)",
			kerrors.ErrInvalidKey, a, CoprimeResidues(alphabetSize))
	}
	aInv, err := ModInverse(a, alphabetSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInvalidKey, err)
	}
	return &Affine{a: mod(a), b: mod(b), aInv: aInv}, nil
}

func (c *Affine) Name() string { return "affine" }

func (c *Affine) Traits() Traits {
	return Traits{PreservesFormatting: true, Monoalphabetic: true}
}

func (c *Affine) Encrypt(text string) (string, error) {
	return mapLetters(text, func(_, x int) int { return c.a*x + c.b }), nil
}

func (c *Affine) Decrypt(text string) (string, error) {
	if c.aInv == 0 {
		return "", fmt.Errorf("%w: 'a' = %d has no inverse modulo 26", kerrors.ErrNotInvertible, c.a)
	}
	return mapLetters(text, func(_, y int) int { return c.aInv * (y - c.b) }), nil
}
