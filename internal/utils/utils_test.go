package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "notes", "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "notes", "deep", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, "notes", "b.txt.scy"), "x")

	t.Run("DoublestarGlob", func(t *testing.T) {
		files, err := ResolveFiles([]string{"**/*.txt"}, dir, nil)
		if err != nil {
			t.Fatalf("ResolveFiles failed: %v", err)
		}
		if len(files) != 3 {
			t.Errorf("expected 3 files, got %d: %v", len(files), files)
		}
	})

	t.Run("SuffixFilter", func(t *testing.T) {
		files, err := ResolveFiles([]string{"notes/*"}, dir, WithSuffix(".scy"))
		if err != nil {
			t.Fatalf("ResolveFiles failed: %v", err)
		}
		if len(files) != 1 || !strings.HasSuffix(files[0], "b.txt.scy") {
			t.Errorf("expected only b.txt.scy, got %v", files)
		}

		files, _ = ResolveFiles([]string{"notes/*"}, dir, WithoutSuffix(".scy"))
		if len(files) != 1 || !strings.HasSuffix(files[0], "b.txt") {
			t.Errorf("expected only b.txt, got %v", files)
		}
	})

	t.Run("Deduplicates", func(t *testing.T) {
		files, err := ResolveFiles([]string{"a.txt", "*.txt", filepath.Join(dir, "a.txt")}, dir, nil)
		if err != nil {
			t.Fatalf("ResolveFiles failed: %v", err)
		}
		if len(files) != 1 {
			t.Errorf("expected 1 file, got %v", files)
		}
	})

	t.Run("MissingLiteralPath", func(t *testing.T) {
		_, err := ResolveFiles([]string{"missing.txt"}, dir, nil)
		if !errors.Is(err, kerrors.ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("GlobWithoutMatches", func(t *testing.T) {
		files, err := ResolveFiles([]string{"*.md"}, dir, nil)
		if err != nil || len(files) != 0 {
			t.Errorf("expected no files and no error, got %v, %v", files, err)
		}
	})
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput(strings.NewReader("Hello, World!\n"))
	if err != nil {
		t.Fatalf("ReadInput failed: %v", err)
	}
	if got != "Hello, World!" {
		t.Errorf("ReadInput = %q, want %q", got, "Hello, World!")
	}

	if _, err := ReadInput(strings.NewReader("")); !errors.Is(err, kerrors.ErrNoInput) {
		t.Errorf("empty input error = %v, want ErrNoInput", err)
	}
	if _, err := ReadInput(nil); !errors.Is(err, kerrors.ErrNoInput) {
		t.Errorf("nil reader error = %v, want ErrNoInput", err)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(strings.NewReader("x")) {
		t.Error("strings.Reader should not be a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "input")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file should not be a terminal")
	}
}
