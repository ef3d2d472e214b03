// Package utils provides shared helpers for the scytale command layer.
//
// # Filesystem Utilities
//
//   - ResolveFiles: expands paths and doublestar globs (**) into files
//   - FormatPaths: formats file paths for human-readable output
//
// # I/O Utilities
//
//   - ReadInput: reads piped text, refusing to block on an interactive
//     terminal
//
// # Terminal Utilities
//
//   - IsTerminal: reports whether a reader is an interactive terminal
package utils
