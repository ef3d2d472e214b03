// Package logger provides leveled console logging for scytale commands.
//
// Verbosity is driven by the root command's flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug and error details
//
// Without flags only WarnfAlways output reaches the terminal; the result of
// a command is reported separately through the spinner's final message.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %d files", len(files))
//
// The cipher packages never log; workflows receive a Logger through their
// options struct.
package logger
