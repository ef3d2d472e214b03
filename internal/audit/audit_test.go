package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/scytale/internal/configs"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "scytale")
	original := configs.UserScytaleSettings
	configs.UserScytaleSettings = &configs.UserSettings{ConfigDir: dir}
	t.Cleanup(func() { configs.UserScytaleSettings = original })
	return dir
}

func TestLog_CreatesFile(t *testing.T) {
	dir := useTempConfigDir(t)

	Log(Entry{Operation: "encrypt", Cipher: "caesar", Files: []string{"notes.txt.scy"}})

	if _, err := os.Stat(filepath.Join(dir, "history.jsonl")); os.IsNotExist(err) {
		t.Fatalf("History log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	useTempConfigDir(t)

	Log(Entry{Operation: "encrypt", Cipher: "caesar"})
	Log(Entry{Operation: "decrypt", Cipher: "caesar"})
	Log(Entry{Operation: "encrypt", Cipher: "railfence"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[2].Cipher != "railfence" {
		t.Errorf("Expected last cipher railfence, got %s", entries[2].Cipher)
	}
	for i, e := range entries {
		if e.Time().IsZero() {
			t.Errorf("Entry %d has no parseable timestamp: %q", i, e.Timestamp)
		}
	}
}

func TestLog_PreservesTimestamp(t *testing.T) {
	useTempConfigDir(t)

	ts := "2024-01-15T10:30:00.123456Z"
	Log(Entry{Timestamp: ts, Operation: "encrypt", Cipher: "atbash"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Timestamp != ts {
		t.Errorf("Expected timestamp %s, got %+v", ts, entries)
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	useTempConfigDir(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
	}{
		{"empty data", "", 0},
		{"single entry", `{"ts":"2024-01-15T10:30:00.000000Z","op":"encrypt","cipher":"caesar"}`, 1},
		{"trailing newline", "{\"op\":\"encrypt\"}\n{\"op\":\"decrypt\"}\n", 2},
		{"malformed line skipped", "{\"op\":\"encrypt\"}\nnot json\n{\"op\":\"decrypt\"}", 2},
		{"blank lines", "\n\n{\"op\":\"encrypt\"}\n\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParseEntries([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseEntries failed: %v", err)
			}
			if len(entries) != tt.expected {
				t.Errorf("Expected %d entries, got %d", tt.expected, len(entries))
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	entries := []Entry{
		{Operation: "encrypt", Cipher: "caesar", Files: []string{"/a/notes.txt.scy"}},
		{Operation: "decrypt", Cipher: "caesar", Files: []string{"/a/notes.txt"}},
		{Operation: "encrypt", Cipher: "route", Files: []string{"/b/plan.md.scy"}},
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no filter", Filter{}, 3},
		{"operation", Filter{Operations: []string{"encrypt"}}, 2},
		{"cipher", Filter{Cipher: "caesar"}, 2},
		{"file substring", Filter{File: "plan.md"}, 1},
		{"combined", Filter{Operations: []string{"decrypt"}, Cipher: "route"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Apply(entries); len(got) != tt.want {
				t.Errorf("Apply() returned %d entries, want %d", len(got), tt.want)
			}
		})
	}
}
