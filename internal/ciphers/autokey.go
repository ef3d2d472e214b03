package ciphers

// Autokey extends the key with the plaintext itself: after the primer is
// used up, letter i is shifted by plaintext letter i - len(primer).
type Autokey struct {
	primer []int
}

func NewAutokey(key string) (*Autokey, error) {
	primer, err := letterKey(key)
	if err != nil {
		return nil, err
	}
	return &Autokey{primer: primer}, nil
}

func (c *Autokey) Name() string { return "autokey" }

func (c *Autokey) Traits() Traits {
	return Traits{SequentialDecrypt: true, PreservesFormatting: true}
}

func (c *Autokey) Encrypt(text string) (string, error) {
	stream := append([]int(nil), c.primer...)
	return mapLetters(text, func(ord, r int) int {
		stream = append(stream, r)
		return r + stream[ord]
	}), nil
}

// Decrypt has to run in order: each recovered letter becomes key material
// for a later position.
func (c *Autokey) Decrypt(text string) (string, error) {
	stream := append([]int(nil), c.primer...)
	return mapLetters(text, func(ord, r int) int {
		p := mod(r - stream[ord])
		stream = append(stream, p)
		return p
	}), nil
}
