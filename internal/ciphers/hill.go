package ciphers

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// Matrix is a 2x2 key matrix, indexed [row][column].
type Matrix [2][2]int

// MatrixFromRows converts a [][]int (as found in settings files) into a
// Matrix, requiring exactly two rows of two entries.
func MatrixFromRows(rows [][]int) (Matrix, error) {
	var m Matrix
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return m, fmt.Errorf("%w: key matrix must be 2x2, got %v", kerrors.ErrInvalidKey, rows)
	}
	for i := range m {
		copy(m[i][:], rows[i])
	}
	return m, nil
}

// Rows returns m as a slice of rows.
func (m Matrix) Rows() [][]int {
	return [][]int{{m[0][0], m[0][1]}, {m[1][0], m[1][1]}}
}

// Determinant returns det(m) reduced into [0, 26).
func (m Matrix) Determinant() int {
	return mod(m[0][0]*m[1][1] - m[0][1]*m[1][0])
}

// Inverse returns the inverse of m modulo 26 via the adjugate.
func (m Matrix) Inverse() (Matrix, error) {
	detInv, err := ModInverse(m.Determinant(), alphabetSize)
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: key matrix %v has determinant %d", kerrors.ErrNotInvertible, m.Rows(), m.Determinant())
	}
	return Matrix{
		{mod(m[1][1] * detInv), mod(-m[0][1] * detInv)},
		{mod(-m[1][0] * detInv), mod(m[0][0] * detInv)},
	}, nil
}

// Hill encrypts letter pairs with a 2x2 matrix. Input is canonicalised to
// lower-case letters only and padded with 'x' to an even length, so case
// and punctuation are not preserved.
type Hill struct {
	key Matrix
	inv Matrix
}

func NewHill(key Matrix) (*Hill, error) {
	for i := range key {
		for j := range key[i] {
			if key[i][j] < 0 || key[i][j] >= alphabetSize {
				return nil, fmt.Errorf("%w: key matrix entries must be in [0, 25], got %d at (%d,%d)",
					kerrors.ErrInvalidKey, key[i][j], i, j)
			}
		}
	}
	det := key.Determinant()
	if det == 0 {
		return nil, fmt.Errorf("%w: key matrix %v has determinant 0 mod 26", kerrors.ErrInvalidKey, key.Rows())
	}
	if !IsCoprime(det, alphabetSize) {
		return nil, fmt.Errorf("%w: key matrix determinant %d is not coprime with 26 (valid determinants: %v)",
			kerrors.ErrInvalidKey, det, CoprimeResidues(alphabetSize))
	}
	inv, err := key.Inverse()
	if err != nil {
		return nil, err
	}
	return &Hill{key: key, inv: inv}, nil
}

func (c *Hill) Name() string { return "hill" }

func (c *Hill) Traits() Traits { return Traits{} }

// Key returns the encryption matrix.
func (c *Hill) Key() Matrix { return c.key }

func (c *Hill) Encrypt(text string) (string, error) {
	return applyMatrix(Canonicalize(text), c.key), nil
}

// Decrypt multiplies by the inverse matrix. Padding added during
// encryption is left in place. A Hill not built by NewHill has no inverse
// and fails with ErrNotInvertible.
func (c *Hill) Decrypt(text string) (string, error) {
	inv := c.inv
	if inv == (Matrix{}) {
		var err error
		if inv, err = c.key.Inverse(); err != nil {
			return "", err
		}
	}
	return applyMatrix(Canonicalize(text), inv), nil
}

// Canonicalize lower-cases text, strips non-letters and pads with 'x' to an
// even length.
func Canonicalize(text string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(text) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	if b.Len()%2 != 0 {
		b.WriteRune(padLetter)
	}
	return b.String()
}

func applyMatrix(text string, m Matrix) string {
	out := make([]byte, len(text))
	for i := 0; i+1 < len(text); i += 2 {
		p0, p1 := int(text[i]-'a'), int(text[i+1]-'a')
		out[i] = byte('a' + mod(m[0][0]*p0+m[0][1]*p1))
		out[i+1] = byte('a' + mod(m[1][0]*p0+m[1][1]*p1))
	}
	return string(out)
}
