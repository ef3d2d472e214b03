package configs

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/PolarWolf314/scytale/internal/ciphers"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

func useTempConfigDir(t *testing.T) {
	t.Helper()
	original := UserScytaleSettings
	UserScytaleSettings = &UserSettings{ConfigDir: t.TempDir()}
	t.Cleanup(func() { UserScytaleSettings = original })
}

func ptr[T any](v T) *T { return &v }

func TestLoadConfigMissingFile(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Ciphers == nil || len(cfg.Ciphers) != 0 {
		t.Errorf("expected empty cipher map, got %v", cfg.Ciphers)
	}
	if ConfigExists() {
		t.Error("ConfigExists() = true for missing file")
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	original := DefaultConfig()
	original.Ciphers["affine"] = Preset{A: ptr(3), B: ptr(0)}
	if err := SaveConfig(original); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if !ConfigExists() {
		t.Fatal("ConfigExists() = false after save")
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Defaults != original.Defaults {
		t.Errorf("Defaults = %+v, want %+v", loaded.Defaults, original.Defaults)
	}
	for _, name := range ciphers.Names() {
		got, ok := loaded.Preset(name)
		if !ok {
			t.Errorf("preset for %s missing after reload", name)
			continue
		}
		if !reflect.DeepEqual(got, original.Ciphers[name]) {
			t.Errorf("preset %s = %s, want %s", name, got, original.Ciphers[name])
		}
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	useTempConfigDir(t)

	content := `
[defaults]
cipher = "vigenere"

[ciphers.vigenere]
key = "LEMON"

[ciphers.hill]
key_matrix = [[3, 3], [2, 5]]

[ciphers.route]
columns = 4
route_type = "snake"

[ciphers.affine]
a = 3
b = 0
`
	if err := os.WriteFile(UserScytaleSettings.ConfigPath(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Cipher != "vigenere" {
		t.Errorf("default cipher = %q, want vigenere", cfg.Defaults.Cipher)
	}
	if p, _ := cfg.Preset("Vigenere"); p.Key == nil || *p.Key != "LEMON" {
		t.Errorf("vigenere preset = %s, want key=LEMON", p)
	}
	if p, _ := cfg.Preset("hill"); !reflect.DeepEqual(p.KeyMatrix, [][]int{{3, 3}, {2, 5}}) {
		t.Errorf("hill matrix = %v", p.KeyMatrix)
	}
	if p, _ := cfg.Preset("route"); p.String() != "columns=4 route_type=snake" {
		t.Errorf("route preset = %s", p)
	}
	if p, _ := cfg.Preset("affine"); p.B == nil || *p.B != 0 {
		t.Errorf("affine preset = %s, want b=0 defined", p)
	}
	if _, ok := cfg.Preset("caesar"); ok {
		t.Error("caesar preset should be absent")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Defaults: Defaults{Cipher: "caesar"},
		Ciphers:  map[string]Preset{"affine": {A: ptr(2), B: ptr(1)}},
	}
	if err := cfg.Validate(); !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("Validate error = %v, want ErrInvalidKey", err)
	}

	// Keys a preset leaves out come from the cipher's defaults.
	cfg = &Config{Ciphers: map[string]Preset{"affine": {A: ptr(3)}, "route": {Columns: ptr(4)}}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("partial presets failed validation: %v", err)
	}

	cfg = &Config{Ciphers: map[string]Preset{"railfence": {Rails: ptr(0)}}}
	if err := cfg.Validate(); !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("rails = 0 error = %v, want ErrInvalidKey", err)
	}

	cfg = &Config{Defaults: Defaults{Cipher: "enigma"}}
	if err := cfg.Validate(); !errors.Is(err, kerrors.ErrUnknownCipher) {
		t.Errorf("Validate error = %v, want ErrUnknownCipher", err)
	}
}

func TestPresetApply(t *testing.T) {
	base := ciphers.Settings{A: 5, B: 8}

	tests := []struct {
		name   string
		preset Preset
		want   ciphers.Settings
	}{
		{"empty preset keeps base", Preset{}, ciphers.Settings{A: 5, B: 8}},
		{"explicit zero replaces base", Preset{A: ptr(3), B: ptr(0)}, ciphers.Settings{A: 3, B: 0}},
		{"unset key keeps base", Preset{A: ptr(7)}, ciphers.Settings{A: 7, B: 8}},
		{"unrelated key is carried", Preset{Shift: ptr(0)}, ciphers.Settings{A: 5, B: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.preset.Apply(base)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPresetOfSkipsZeroFields(t *testing.T) {
	p := PresetOf(ciphers.Settings{Columns: 5, RouteType: ciphers.RouteSpiral})
	if got := p.String(); got != "columns=5 route_type=spiral" {
		t.Errorf("PresetOf().String() = %q", got)
	}
}
