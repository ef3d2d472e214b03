// Package configs manages scytale's presets file.
//
// The file lives at $XDG_CONFIG_HOME/scytale/config.toml, or under
// os.UserConfigDir() when XDG_CONFIG_HOME is unset, and is plain TOML:
//
//	[defaults]
//	cipher = "caesar"
//	ngram_length = 2
//
//	[ciphers.caesar]
//	shift = 3
//
//	[ciphers.hill]
//	key_matrix = [[2, 1], [3, 4]]
//
// A missing file is not an error: LoadConfig returns an empty Config and
// callers fall back to each cipher's built-in defaults. Flags given on the
// command line always win over presets.
//
// A preset only overrides the keys it names, and a key set to zero is still
// set: b = 0 in [ciphers.affine] replaces the default b. Presets are passed
// explicitly into each cipher call.
// Nothing in this package holds cipher state between calls.
package configs
