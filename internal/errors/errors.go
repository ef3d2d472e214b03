package errors

import "errors"

// Key errors indicate the supplied key cannot drive the selected cipher.
var (
	// ErrInvalidKey indicates the key fails the cipher's validity rule.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNotInvertible indicates a modular or matrix inverse does not exist.
	ErrNotInvertible = errors.New("not invertible")
)

// Dispatch errors indicate the requested cipher or mode is not known.
var (
	// ErrUnknownCipher indicates no cipher is registered under the given name.
	ErrUnknownCipher = errors.New("unknown cipher")

	// ErrUnknownRoute indicates the route cipher traversal is not recognised.
	ErrUnknownRoute = errors.New("unknown route type")

	// ErrUnsupportedOperation indicates the operation is not offered by the cipher.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Analysis errors indicate bad parameters for n-gram operations.
var (
	// ErrInvalidNgramLength indicates the n-gram length is below 1.
	ErrInvalidNgramLength = errors.New("invalid n-gram length")

	// ErrEmptyPattern indicates a replacement mapping has an empty source n-gram.
	ErrEmptyPattern = errors.New("empty replacement pattern")
)

// Input errors indicate there is nothing to operate on.
var (
	// ErrNoInput indicates no text was supplied via arguments or stdin.
	ErrNoInput = errors.New("no input text")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")
)

// History errors indicate bad filters for the batch history log.
var (
	// ErrInvalidDateFormat indicates a --since or --until date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
