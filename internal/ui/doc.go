// Package ui provides semantic text formatting for scytale's terminal output.
//
// Each formatter names what is being shown rather than how it looks:
//
//	ui.Code.Sprint("scytale encrypt caesar")  // Commands to run
//	ui.Path.Sprint("notes/letter.txt")        // File paths
//	ui.Flag.Sprint("--shift")                 // Flags
//	ui.Highlight.Sprint("vigenere")           // Cipher names and key values
//	ui.Heading.Sprint("Caesar Cipher")        // Section titles
//	ui.Muted.Sprint("self-inverse")           // Secondary details
//
// The status helpers build the one-line messages commands end with:
//
//	ui.Done("Encrypted 3 files")     // ✓ Encrypted 3 files
//	ui.Failed("Invalid key")         // ✗ Invalid key
//	ui.Hint("Run scytale ciphers")   // → Run scytale ciphers
//
// Colors are dropped when NO_COLOR is set or the terminal cannot show them
// (fatih/color detection). Formatters that would otherwise be ambiguous then
// fall back to text decoration: Code gets `backticks`, Highlight gets
// 'quotes' and Muted gets (parentheses).
package ui
