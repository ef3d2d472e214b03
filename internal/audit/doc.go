// Package audit keeps a history of batch file operations.
//
// Every encrypt or decrypt run over files appends one entry to a log in the
// user's configuration directory, recording which cipher produced which
// files. Keys are never recorded; the log only answers "what do I decrypt
// this .scy file with?".
//
// # Log Format
//
// The log is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_CONFIG_HOME/scytale/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name (encrypt or decrypt)
//   - Cipher name
//   - The files that were written
//
// # Failure Handling
//
// Logging is best-effort. If the log cannot be written the operation still
// succeeds.
//
// # Reading Logs
//
// Use ReadEntries() to parse the log for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
