package ciphers

// repeatingKey shifts letter number i by shifts[i % len(shifts)].
type repeatingKey struct {
	shifts []int
}

func (k repeatingKey) forward(text string) string {
	return mapLetters(text, func(ord, r int) int { return r + k.shifts[ord%len(k.shifts)] })
}

func (k repeatingKey) backward(text string) string {
	return mapLetters(text, func(ord, r int) int { return r - k.shifts[ord%len(k.shifts)] })
}

// Vigenere is the classic keyword cipher. Non-letters in the key are
// dropped, so "Lemon tree!" and "LEMONTREE" are the same key.
type Vigenere struct {
	key repeatingKey
}

func NewVigenere(key string) (*Vigenere, error) {
	shifts, err := strippedLetterKey(key)
	if err != nil {
		return nil, err
	}
	return &Vigenere{key: repeatingKey{shifts: shifts}}, nil
}

func (c *Vigenere) Name() string { return "vigenere" }

func (c *Vigenere) Traits() Traits { return Traits{PreservesFormatting: true} }

// Key returns the normalised keyword.
func (c *Vigenere) Key() string { return keyString(c.key.shifts) }

func (c *Vigenere) Encrypt(text string) (string, error) { return c.key.forward(text), nil }

func (c *Vigenere) Decrypt(text string) (string, error) { return c.key.backward(text), nil }

// Gronsfeld is Vigenère with a key of digits, each digit being a shift.
type Gronsfeld struct {
	key repeatingKey
}

func NewGronsfeld(key string) (*Gronsfeld, error) {
	shifts, err := digitKey(key)
	if err != nil {
		return nil, err
	}
	return &Gronsfeld{key: repeatingKey{shifts: shifts}}, nil
}

func (c *Gronsfeld) Name() string { return "gronsfeld" }

func (c *Gronsfeld) Traits() Traits { return Traits{PreservesFormatting: true} }

func (c *Gronsfeld) Encrypt(text string) (string, error) { return c.key.forward(text), nil }

func (c *Gronsfeld) Decrypt(text string) (string, error) { return c.key.backward(text), nil }
