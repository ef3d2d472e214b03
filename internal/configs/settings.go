package configs

import (
	"os"
	"path/filepath"
)

type UserSettings struct {
	ConfigDir string
}

// ConfigPath returns the location of the presets file.
func (s *UserSettings) ConfigPath() string {
	return filepath.Join(s.ConfigDir, "config.toml")
}

// UserScytaleSettings points at the user's configuration directory. Tests
// replace it with a temporary directory.
var UserScytaleSettings = &UserSettings{ConfigDir: defaultConfigDir()}

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "scytale")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "scytale")
	}
	// No home directory (e.g. minimal containers); use the working directory.
	return ".scytale"
}
