package configs

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/scytale/internal/ciphers"
)

type Config struct {
	Defaults Defaults          `toml:"defaults"`
	Ciphers  map[string]Preset `toml:"ciphers"`
}

type Defaults struct {
	Cipher      string `toml:"cipher,omitempty"`
	NgramLength int    `toml:"ngram_length,omitempty"`
}

// DefaultConfig returns a Config holding every cipher's built-in settings.
func DefaultConfig() *Config {
	cfg := &Config{
		Defaults: Defaults{Cipher: "caesar", NgramLength: 2},
		Ciphers:  make(map[string]Preset),
	}
	for _, info := range ciphers.All() {
		cfg.Ciphers[info.Name] = PresetOf(info.Defaults)
	}
	return cfg
}

// LoadConfig reads the presets file. A missing file yields an empty Config.
func LoadConfig() (*Config, error) {
	configPath := UserScytaleSettings.ConfigPath()

	config := &Config{Ciphers: make(map[string]Preset)}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if config.Ciphers == nil {
		config.Ciphers = make(map[string]Preset)
	}

	return config, nil
}

// SaveConfig writes config to the presets file.
func SaveConfig(config *Config) error {
	if err := SaveTOML(UserScytaleSettings.ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ConfigExists reports whether the presets file is present.
func ConfigExists() bool {
	_, err := os.Stat(UserScytaleSettings.ConfigPath())
	return err == nil
}

// Preset returns the stored preset for cipher name, if any. The name is
// matched through the cipher registry, so "Rail-Fence" finds railfence.
func (c *Config) Preset(name string) (Preset, bool) {
	if c == nil {
		return Preset{}, false
	}
	info, err := ciphers.Lookup(name)
	if err != nil {
		return Preset{}, false
	}
	s, ok := c.Ciphers[info.Name]
	return s, ok
}

// Validate checks the default cipher name and that every preset, laid over
// its cipher's defaults, builds a cipher. A bad file is reported when it is
// loaded rather than on use.
func (c *Config) Validate() error {
	if c.Defaults.Cipher != "" {
		if _, err := ciphers.Lookup(c.Defaults.Cipher); err != nil {
			return fmt.Errorf("defaults.cipher: %w", err)
		}
	}
	if c.Defaults.NgramLength < 0 {
		return fmt.Errorf("defaults.ngram_length must not be negative, got %d", c.Defaults.NgramLength)
	}
	for name, p := range c.Ciphers {
		info, err := ciphers.Lookup(name)
		if err != nil {
			return fmt.Errorf("ciphers.%s: %w", name, err)
		}
		if _, err := ciphers.New(info.Name, p.Apply(info.Defaults)); err != nil {
			return fmt.Errorf("ciphers.%s: %w", name, err)
		}
	}
	return nil
}
