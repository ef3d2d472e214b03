package ciphers

// Traits describes behaviour that differs between ciphers.
type Traits struct {
	// SelfInverse ciphers use one transform for both directions.
	SelfInverse bool

	// SequentialDecrypt is set when each decrypted letter feeds the key for
	// the next one, so decryption cannot be split across positions.
	SequentialDecrypt bool

	// PreservesFormatting is set when case and non-letters stay in place.
	PreservesFormatting bool

	// Monoalphabetic ciphers apply one fixed substitution to every letter.
	Monoalphabetic bool
}

// Cipher is implemented by every cipher in this package.
type Cipher interface {
	Name() string
	Traits() Traits
}

// Asymmetric ciphers have distinct encryption and decryption.
type Asymmetric interface {
	Cipher
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// Symmetric ciphers are involutions: Transform(Transform(t)) == t.
type Symmetric interface {
	Cipher
	Transform(text string) string
}
