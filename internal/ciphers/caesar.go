package ciphers

// Caesar shifts every letter a fixed number of places. Any integer shift is
// accepted and reduced modulo 26.
type Caesar struct {
	shift int
}

func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: mod(shift)}
}

func (c *Caesar) Name() string { return "caesar" }

func (c *Caesar) Traits() Traits {
	return Traits{PreservesFormatting: true, Monoalphabetic: true}
}

// Shift returns the normalised shift in [0, 26).
func (c *Caesar) Shift() int { return c.shift }

func (c *Caesar) Encrypt(text string) (string, error) {
	return shiftLetters(text, c.shift), nil
}

// Decrypt applies the complementary positive shift.
func (c *Caesar) Decrypt(text string) (string, error) {
	return shiftLetters(text, (alphabetSize-c.shift)%alphabetSize), nil
}

func shiftLetters(text string, shift int) string {
	return mapLetters(text, func(_, r int) int { return r + shift })
}
