package ciphers

// Beaufort maps rank r to (k - r) mod 26. Applying it twice with the same
// key returns the input, so one Transform serves both directions.
type Beaufort struct {
	shifts []int
}

func NewBeaufort(key string) (*Beaufort, error) {
	shifts, err := letterKey(key)
	if err != nil {
		return nil, err
	}
	return &Beaufort{shifts: shifts}, nil
}

func (c *Beaufort) Name() string { return "beaufort" }

func (c *Beaufort) Traits() Traits {
	return Traits{SelfInverse: true, PreservesFormatting: true}
}

func (c *Beaufort) Transform(text string) string {
	return mapLetters(text, func(ord, r int) int { return c.shifts[ord%len(c.shifts)] - r })
}
