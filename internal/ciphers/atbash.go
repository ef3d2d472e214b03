package ciphers

// Atbash mirrors the alphabet: A<->Z, B<->Y and so on.
type Atbash struct{}

func NewAtbash() *Atbash { return &Atbash{} }

func (Atbash) Name() string { return "atbash" }

func (Atbash) Traits() Traits {
	return Traits{SelfInverse: true, PreservesFormatting: true, Monoalphabetic: true}
}

func (Atbash) Transform(text string) string {
	return mapLetters(text, func(_, r int) int { return alphabetSize - 1 - r })
}
