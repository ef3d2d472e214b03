// Package workflows provides high-level orchestration for Scytale commands.
//
// Workflows coordinate the ciphers, ngram, configs, audit and utils packages to
// implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners and output formatting.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// # Available Workflows
//
//   - Transform: Encrypts or decrypts a single piece of text
//   - TransformFiles: Encrypts or decrypts a batch of files on disk
//   - Analyze: Extracts, counts or replaces n-grams
//   - History: Reads and filters the log of batch file runs
//   - ResolveSettings: Picks the settings a cipher runs with
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, so the CLI
// layer can pick a message without string matching:
//
//	result, err := workflows.Transform(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidKey) {
//	    // Show the key requirements for this cipher
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Batch workflows check it between files.
package workflows
