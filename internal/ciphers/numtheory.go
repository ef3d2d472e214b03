package ciphers

import (
	"fmt"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(a, 0) is |a|.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsCoprime reports whether gcd(a, m) == 1.
func IsCoprime(a, m int) bool {
	return GCD(a, m) == 1
}

// ModInverse returns the x in [1, m) with a*x ≡ 1 (mod m). a is reduced into
// [0, m) first. The search is linear, which is fine for m = 26.
func ModInverse(a, m int) (int, error) {
	if m < 2 {
		return 0, fmt.Errorf("%w: modulus must be at least 2, got %d", kerrors.ErrNotInvertible, m)
	}
	a = ((a % m) + m) % m
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, nil
		}
	}
	return 0, fmt.Errorf("%w: %d has no inverse modulo %d", kerrors.ErrNotInvertible, a, m)
}

// CoprimeResidues lists the values in [1, m) that are coprime with m.
func CoprimeResidues(m int) []int {
	var out []int
	for a := 1; a < m; a++ {
		if IsCoprime(a, m) {
			out = append(out, a)
		}
	}
	return out
}
