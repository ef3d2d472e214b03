package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/PolarWolf314/scytale/internal/audit"
	"github.com/PolarWolf314/scytale/internal/ciphers"
	"github.com/PolarWolf314/scytale/internal/configs"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
	"github.com/PolarWolf314/scytale/internal/ngram"
)

func TestResolveSettings(t *testing.T) {
	key, snake, zero := "LEMON", ciphers.RouteSnake, 0
	cfg := &configs.Config{Ciphers: map[string]configs.Preset{
		"vigenere": {Key: &key},
		"route":    {RouteType: &snake},
		"caesar":   {Shift: &zero},
	}}
	three := 3
	affine := &configs.Config{Ciphers: map[string]configs.Preset{
		"affine": {A: &three, B: &zero},
	}}

	tests := []struct {
		name   string
		cipher string
		cfg    *configs.Config
		want   ciphers.Settings
	}{
		{"defaults without config", "caesar", nil, ciphers.Settings{Shift: 3}},
		{"preset replaces key", "Vigenere", cfg, ciphers.Settings{Key: "LEMON"}},
		{"partial preset keeps defaults", "route", cfg, ciphers.Settings{Columns: 5, RouteType: ciphers.RouteSnake}},
		{"no preset for cipher", "railfence", cfg, ciphers.Settings{Rails: 3}},
		{"zero shift is kept", "caesar", cfg, ciphers.Settings{Shift: 0}},
		{"zero affine b is kept", "affine", affine, ciphers.Settings{A: 3, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSettings(tt.cipher, tt.cfg)
			if err != nil {
				t.Fatalf("ResolveSettings failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveSettings(%q) = %+v, want %+v", tt.cipher, got, tt.want)
			}
		})
	}

	if _, err := ResolveSettings("enigma", nil); !errors.Is(err, kerrors.ErrUnknownCipher) {
		t.Errorf("expected ErrUnknownCipher, got %v", err)
	}
}

func TestResolveSettingsFromPresetsFile(t *testing.T) {
	useTempConfigDir(t)

	content := "[ciphers.affine]\na = 3\nb = 0\n"
	if err := os.WriteFile(configs.UserScytaleSettings.ConfigPath(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write presets: %v", err)
	}
	cfg, err := configs.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	settings, err := ResolveSettings("affine", cfg)
	if err != nil {
		t.Fatalf("ResolveSettings failed: %v", err)
	}
	if settings.A != 3 || settings.B != 0 {
		t.Fatalf("preset b=0 ignored, got %+v", settings)
	}

	res, err := Transform(context.Background(), TransformOptions{
		Cipher:    "affine",
		Operation: Encrypt,
		Settings:  settings,
		Text:      "abc",
	})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if res.Output != "adg" {
		t.Errorf("Output = %q, want %q", res.Output, "adg")
	}
}

func TestTransform(t *testing.T) {
	ctx := context.Background()

	enc, err := Transform(ctx, TransformOptions{
		Cipher:    "caesar",
		Operation: Encrypt,
		Settings:  ciphers.Settings{Shift: 3},
		Text:      "Hello, World!",
	})
	if err != nil {
		t.Fatalf("Transform encrypt failed: %v", err)
	}
	if enc.Output != "Khoor, Zruog!" {
		t.Errorf("Output = %q, want %q", enc.Output, "Khoor, Zruog!")
	}
	if enc.Cipher != "caesar" || !enc.Traits.Monoalphabetic {
		t.Errorf("unexpected result metadata: %+v", enc)
	}

	dec, err := Transform(ctx, TransformOptions{
		Cipher:    "CAESAR",
		Operation: Decrypt,
		Settings:  ciphers.Settings{Shift: 3},
		Text:      enc.Output,
	})
	if err != nil {
		t.Fatalf("Transform decrypt failed: %v", err)
	}
	if dec.Output != "Hello, World!" {
		t.Errorf("Output = %q, want %q", dec.Output, "Hello, World!")
	}
}

func TestTransformErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Transform(ctx, TransformOptions{Cipher: "affine", Operation: Encrypt, Settings: ciphers.Settings{A: 13}})
	if !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}

	_, err = Transform(ctx, TransformOptions{Cipher: "caesar", Operation: "scramble", Settings: ciphers.Settings{Shift: 1}})
	if !errors.Is(err, kerrors.ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Transform(cancelled, TransformOptions{Cipher: "atbash", Operation: Encrypt, Text: "abc"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// useTempConfigDir keeps the history log written by batch runs out of the
// real configuration directory.
func useTempConfigDir(t *testing.T) {
	t.Helper()
	original := configs.UserScytaleSettings
	configs.UserScytaleSettings = &configs.UserSettings{ConfigDir: t.TempDir()}
	t.Cleanup(func() { configs.UserScytaleSettings = original })
}

func TestTransformFilesRoundTrip(t *testing.T) {
	useTempConfigDir(t)
	ctx := context.Background()
	dir := t.TempDir()

	notes := filepath.Join(dir, "notes.txt")
	nested := filepath.Join(dir, "sub", "letter.txt")
	if err := os.MkdirAll(filepath.Dir(nested), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(notes, []byte("attack at dawn\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(nested, []byte("Meet me by the old oak"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := ciphers.Settings{Key: "LEMON"}
	enc, err := TransformFiles(ctx, FilesOptions{
		Cipher:    "vigenere",
		Operation: Encrypt,
		Settings:  settings,
		Patterns:  []string{"**/*.txt"},
		BaseDir:   dir,
	})
	if err != nil {
		t.Fatalf("TransformFiles encrypt failed: %v", err)
	}
	wantTargets := []string{notes + EncryptedExt, nested + EncryptedExt}
	if !reflect.DeepEqual(enc.TargetFiles(), wantTargets) {
		t.Fatalf("TargetFiles = %v, want %v", enc.TargetFiles(), wantTargets)
	}

	data, err := os.ReadFile(notes + EncryptedExt)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "lxfopv ef rnhr\n" {
		t.Errorf("encrypted notes = %q", string(data))
	}

	// Remove the plaintext so decrypting has to recreate it.
	if err := os.Remove(notes); err != nil {
		t.Fatal(err)
	}

	dec, err := TransformFiles(ctx, FilesOptions{
		Cipher:    "vigenere",
		Operation: Decrypt,
		Settings:  settings,
		Patterns:  []string{"**/*"},
		BaseDir:   dir,
	})
	if err != nil {
		t.Fatalf("TransformFiles decrypt failed: %v", err)
	}
	if !reflect.DeepEqual(dec.SourceFiles(), wantTargets) {
		t.Errorf("SourceFiles = %v, want %v", dec.SourceFiles(), wantTargets)
	}

	data, err = os.ReadFile(notes)
	if err != nil {
		t.Fatalf("decrypted file missing: %v", err)
	}
	if string(data) != "attack at dawn\n" {
		t.Errorf("decrypted notes = %q", string(data))
	}

	history, err := audit.ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(history) != 2 || history[0].Operation != "encrypt" || history[1].Operation != "decrypt" {
		t.Fatalf("unexpected history: %+v", history)
	}
	if history[0].Cipher != "vigenere" || !reflect.DeepEqual(history[0].Files, wantTargets) {
		t.Errorf("encrypt history entry = %+v", history[0])
	}
}

func TestTransformFilesDryRun(t *testing.T) {
	useTempConfigDir(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(src, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := TransformFiles(context.Background(), FilesOptions{
		Cipher:    "atbash",
		Operation: Encrypt,
		Patterns:  []string{"plain.txt"},
		BaseDir:   dir,
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("TransformFiles failed: %v", err)
	}
	if !result.DryRun || len(result.Files) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if _, err := os.Stat(src + EncryptedExt); !os.IsNotExist(err) {
		t.Error("dry run wrote a file")
	}
	if entries, _ := audit.ReadEntries(); len(entries) != 0 {
		t.Errorf("dry run was recorded in history: %+v", entries)
	}
}

func TestTransformFilesErrors(t *testing.T) {
	useTempConfigDir(t)
	ctx := context.Background()
	dir := t.TempDir()

	_, err := TransformFiles(ctx, FilesOptions{Cipher: "atbash", Operation: Decrypt, Patterns: []string{"*.scy"}, BaseDir: dir})
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("expected ErrNoFilesFound, got %v", err)
	}

	_, err = TransformFiles(ctx, FilesOptions{Cipher: "atbash", Operation: Encrypt, Patterns: []string{"missing.txt"}, BaseDir: dir})
	if !errors.Is(err, kerrors.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	_, err = TransformFiles(ctx, FilesOptions{Cipher: "railfence", Operation: Encrypt, Settings: ciphers.Settings{Rails: 1}, BaseDir: dir})
	if !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	extract, err := Analyze(ctx, AnalyzeOptions{Mode: Extract, Text: "hello", N: 2})
	if err != nil {
		t.Fatalf("Analyze extract failed: %v", err)
	}
	if !reflect.DeepEqual(extract.Grams, []string{"he", "el", "ll", "lo"}) {
		t.Errorf("Grams = %v", extract.Grams)
	}

	freq, err := Analyze(ctx, AnalyzeOptions{Mode: Frequency, Text: "abab", N: 2})
	if err != nil {
		t.Fatalf("Analyze frequency failed: %v", err)
	}
	want := []ngram.Count{{Gram: "ab", Count: 2}, {Gram: "ba", Count: 1}}
	if !reflect.DeepEqual(freq.Counts, want) {
		t.Errorf("Counts = %v, want %v", freq.Counts, want)
	}

	repl, err := Analyze(ctx, AnalyzeOptions{Mode: Replace, Text: "the then", Mapping: ngram.Mapping{{From: "th", To: "XX"}}})
	if err != nil {
		t.Fatalf("Analyze replace failed: %v", err)
	}
	if repl.Output != "XXe XXen" {
		t.Errorf("Output = %q", repl.Output)
	}

	if _, err := Analyze(ctx, AnalyzeOptions{Mode: Extract, Text: "abc", N: 0}); !errors.Is(err, kerrors.ErrInvalidNgramLength) {
		t.Errorf("expected ErrInvalidNgramLength, got %v", err)
	}
	if _, err := Analyze(ctx, AnalyzeOptions{Mode: Replace, Mapping: ngram.Mapping{{From: ""}}}); !errors.Is(err, kerrors.ErrEmptyPattern) {
		t.Errorf("expected ErrEmptyPattern, got %v", err)
	}
}
