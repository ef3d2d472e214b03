package workflows

import (
	"github.com/PolarWolf314/scytale/internal/ciphers"
	"github.com/PolarWolf314/scytale/internal/configs"
)

// ResolveSettings returns the settings cipher name runs with before any
// command-line overrides: the built-in defaults, with every key the user's
// preset defines laid over them, zero values included. cfg may be nil.
//
// Returns ErrUnknownCipher if name is not registered.
func ResolveSettings(name string, cfg *configs.Config) (ciphers.Settings, error) {
	info, err := ciphers.Lookup(name)
	if err != nil {
		return ciphers.Settings{}, err
	}

	settings := info.Defaults
	if preset, ok := cfg.Preset(info.Name); ok {
		settings = preset.Apply(settings)
	}
	return settings, nil
}
