package ciphers

// Autoclave extends the key with the ciphertext: after the primer is used
// up, letter i is shifted by ciphertext letter i - len(primer).
type Autoclave struct {
	primer []int
}

func NewAutoclave(key string) (*Autoclave, error) {
	primer, err := letterKey(key)
	if err != nil {
		return nil, err
	}
	return &Autoclave{primer: primer}, nil
}

func (c *Autoclave) Name() string { return "autoclave" }

func (c *Autoclave) Traits() Traits { return Traits{PreservesFormatting: true} }

func (c *Autoclave) Encrypt(text string) (string, error) {
	stream := append([]int(nil), c.primer...)
	return mapLetters(text, func(ord, r int) int {
		e := mod(r + stream[ord])
		stream = append(stream, e)
		return e
	}), nil
}

// Decrypt reads its key material straight from the input, so every position
// is independent of the others.
func (c *Autoclave) Decrypt(text string) (string, error) {
	stream := append(append([]int(nil), c.primer...), letterRanks(text)...)
	return mapLetters(text, func(ord, r int) int { return r - stream[ord] }), nil
}
