// Package ciphers implements classical text ciphers over the 26-letter Latin
// alphabet.
//
// Every cipher is a small value type built by a constructor that validates
// its key eagerly. A rejected key yields an error wrapping
// errors.ErrInvalidKey and no cipher value, so no transform ever runs with a
// bad key. After construction the values are immutable and safe for
// concurrent use.
//
// # Capabilities
//
// Ciphers with distinct encryption and decryption implement Asymmetric.
// Involutions (Atbash, Beaufort) implement Symmetric and expose a single
// Transform. The Encrypt and Decrypt helpers accept either.
//
// Traits describe per-cipher behaviour callers may need to know about:
//
//   - PreservesFormatting: case and non-letters keep their positions
//   - SequentialDecrypt: position i cannot be decrypted before positions < i
//   - SelfInverse: encryption and decryption are the same function
//   - Monoalphabetic: one fixed letter-to-letter substitution
//
// # Key streams
//
// Polyalphabetic ciphers (Vigenère, Gronsfeld, Beaufort, Autokey, Autoclave)
// advance their key stream only on letters. Spaces and punctuation are copied
// through without consuming a key position.
//
// # Dispatch
//
// New builds a cipher by registry name from a Settings struct:
//
//	c, err := ciphers.New("affine", ciphers.Settings{A: 5, B: 8})
//	if err != nil {
//	    return err
//	}
//	out, err := ciphers.Encrypt(c, "Hello, World!")
package ciphers
