// Package errors provides typed error values for scytale.
//
// Sentinel errors let callers branch on a failure with errors.Is() instead of
// matching message text. Every failure returned by the cipher, n-gram and
// workflow packages wraps one of these values together with a human-readable
// reason, so the CLI can print the message verbatim.
//
// # Error Categories
//
//   - Key errors: the supplied key breaks a cipher's validity rule
//     (ErrInvalidKey) or has no modular inverse (ErrNotInvertible)
//   - Dispatch errors: unknown cipher names or route types (ErrUnknownCipher,
//     ErrUnknownRoute, ErrUnsupportedOperation)
//   - Analysis errors: bad n-gram parameters (ErrInvalidNgramLength,
//     ErrEmptyPattern)
//   - Input errors: nothing to transform or no files matched (ErrNoInput,
//     ErrNoFilesFound, ErrFileNotFound)
//   - History errors: bad date filters for the history log
//     (ErrInvalidDateFormat)
//
// # Usage
//
// Wrap a sentinel with the constraint that was violated:
//
//	return nil, fmt.Errorf("%w: rails must be at least 2, got %d", kerrors.ErrInvalidKey, rails)
//
// Branch on it in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrInvalidKey) {
//	    // Show the reason next to the offending flag
//	}
package errors
